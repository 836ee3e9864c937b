package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ghostink/ghostink/internal/codec"
	"github.com/ghostink/ghostink/internal/strategy"
)

func TestSummarize(t *testing.T) {
	embedded, err := strategy.Insert("a\nb\nc\nd", codec.Pack("X"), strategy.NthLines, 2)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize("host.txt", embedded)
	if len(s.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(s.Runs))
	}
	if s.TotalBits != 16 || s.TotalBytes != 2 {
		t.Fatalf("expected 16 bits / 2 bytes, got %d/%d", s.TotalBits, s.TotalBytes)
	}
	if s.Payload != "XX" {
		t.Fatalf("expected payload XX, got %q", s.Payload)
	}
	if s.Digest == "" {
		t.Fatal("expected a digest for nonempty payload")
	}
	for _, r := range s.Runs {
		if r.Preview != "X" {
			t.Fatalf("expected preview X, got %q", r.Preview)
		}
	}
}

func TestSummarize_CleanText(t *testing.T) {
	s := Summarize("", "nothing hidden")
	if len(s.Runs) != 0 || s.TotalBits != 0 || s.Payload != "" || s.Digest != "" {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}

func TestPrintSummary(t *testing.T) {
	embedded, err := strategy.Insert("Hello\nWorld", codec.Pack("Hi"), strategy.Bottom, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	PrintSummary(&buf, Summarize("host.txt", embedded), PrintOptions{NoColor: true})
	out := buf.String()
	for _, want := range []string{"host.txt", "16", "Runs: 1", "Payload: 2 bytes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_NoHiddenData(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Summarize("", "plain"), PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "no hidden data") {
		t.Fatalf("expected the empty notice, got:\n%s", buf.String())
	}
}

func TestPreview_TruncatesAndEscapes(t *testing.T) {
	long := preview(strings.Repeat("a", 100))
	if len(long) <= previewLimit {
		t.Fatalf("expected truncation marker, got %q", long)
	}
	if got := preview("a\nb"); got != `a\nb` {
		t.Fatalf("expected escaped newline, got %q", got)
	}
}
