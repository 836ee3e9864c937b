// Package report renders inspect results for humans. JSON output is handled
// by the CLI layer; everything here is the styled console path.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/ghostink/ghostink/internal/codec"
	"github.com/ghostink/ghostink/internal/files"
)

// RunInfo is one contiguous carrier run plus its decoded preview.
type RunInfo struct {
	Offset  int    `json:"offset"`
	Bits    int    `json:"bits"`
	Bytes   int    `json:"bytes"`
	Preview string `json:"preview"`
}

// Summary describes everything inspect learned about one text.
type Summary struct {
	Path       string    `json:"path,omitempty"`
	Runs       []RunInfo `json:"runs"`
	TotalBits  int       `json:"total_bits"`
	TotalBytes int       `json:"total_bytes"`
	Payload    string    `json:"payload"`
	Digest     string    `json:"digest,omitempty"`
}

const previewLimit = 32

// Summarize scans text for carrier runs and decodes each one, plus the
// whole payload across runs.
func Summarize(path, text string) Summary {
	s := Summary{Path: path, Payload: codec.Unpack(text)}
	for _, r := range codec.Runs(text) {
		s.TotalBits += r.Bits
		s.Runs = append(s.Runs, RunInfo{
			Offset:  r.Offset,
			Bits:    r.Bits,
			Bytes:   r.Bits / 8,
			Preview: preview(codec.Unpack(string([]rune(text)[r.Offset : r.Offset+r.Bits]))),
		})
	}
	s.TotalBytes = s.TotalBits / 8
	if s.Payload != "" {
		s.Digest = files.Digest([]byte(s.Payload))
	}
	return s
}

func preview(decoded string) string {
	q := strconv.Quote(decoded)
	q = q[1 : len(q)-1]
	if len(q) > previewLimit {
		q = q[:previewLimit] + "…"
	}
	return q
}

// PrintOptions controls console rendering.
type PrintOptions struct {
	NoColor bool
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintSummary writes the run table and totals for one inspected text.
func PrintSummary(w io.Writer, s Summary, opts PrintOptions) {
	header := s.Path
	if header == "" {
		header = "(stdin)"
	}
	if opts.NoColor {
		fmt.Fprintln(w, header)
	} else {
		fmt.Fprintln(w, titleStyle.Render(header))
	}

	if len(s.Runs) == 0 {
		msg := "no hidden data"
		if !opts.NoColor {
			msg = dimStyle.Render(msg)
		}
		fmt.Fprintln(w, msg)
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("OFFSET", "BITS", "BYTES", "PREVIEW")
	for _, r := range s.Runs {
		_ = table.Append([]string{
			strconv.Itoa(r.Offset),
			strconv.Itoa(r.Bits),
			strconv.Itoa(r.Bytes),
			r.Preview,
		})
	}
	_ = table.Render()

	fmt.Fprintf(w, "Runs: %d  Payload: %d bytes (%d bits)\n", len(s.Runs), s.TotalBytes, s.TotalBits)
	if s.Digest != "" {
		fmt.Fprintf(w, "Digest: %s\n", s.Digest)
	}
}
