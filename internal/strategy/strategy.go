// Package strategy decides where a carrier sequence is spliced into host
// text. Five variants share one Insert contract; Random and RandomInLine
// draw from a non-cryptographic source that tests can reseed.
package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ghostink/ghostink/internal/glyph"
)

// Position selects one embedding variant. The set is closed; Parse rejects
// anything else.
type Position string

const (
	Top          Position = "top"          // carrier before the whole host
	Bottom       Position = "bottom"       // carrier after the whole host
	Random       Position = "random"       // k splices at random rune indexes
	NthLines     Position = "nthlines"     // appended to every k-th line
	RandomInLine Position = "randominline" // random offset in every k-th line
)

// Parse maps a user-supplied name to a Position.
func Parse(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Top, Bottom, Random, NthLines, RandomInLine:
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q (want top|bottom|random|nthlines|randominline)", s)
}

// maxRandomRetries bounds index picking under Random so a degenerate host
// (empty, or saturated with carrier glyphs) fails instead of spinning.
const maxRandomRetries = 1000

// ErrNoInsertionPoint is returned when Random cannot find a non-glyph index
// within the retry budget.
var ErrNoInsertionPoint = errors.New("host too small or too saturated for random insertion")

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed makes Random and RandomInLine reproducible. Intended for tests and
// the --seed flag; callers that never seed get a time-based source.
func Seed(seed int64) {
	rngMu.Lock()
	rng = rand.New(rand.NewSource(seed))
	rngMu.Unlock()
}

func intn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

// Insert returns host with the carrier sequence spliced in per pos. k is
// the repeat count for Random and the line stride for NthLines and
// RandomInLine; Top and Bottom ignore it. The host is never mutated; an
// empty carrier sequence returns the host unchanged.
func Insert(host, glyphs string, pos Position, k int) (string, error) {
	if glyphs == "" {
		return host, nil
	}
	switch pos {
	case Top:
		return glyphs + host, nil
	case Bottom:
		return host + glyphs, nil
	case Random:
		if k < 1 {
			return "", fmt.Errorf("count must be at least 1, got %d", k)
		}
		return insertRandom(host, glyphs, k)
	case NthLines:
		if k < 1 {
			return "", fmt.Errorf("count must be at least 1, got %d", k)
		}
		return insertNthLines(host, glyphs, k), nil
	case RandomInLine:
		if k < 1 {
			return "", fmt.Errorf("count must be at least 1, got %d", k)
		}
		return insertRandomInLine(host, glyphs, k), nil
	}
	return "", fmt.Errorf("unknown position %q", pos)
}

// insertRandom splices the carrier k times, each time before a random rune
// index of the current (already grown) host. Indexes landing on a carrier
// glyph are redrawn so one run never splits another; the redraw budget is
// capped to keep degenerate hosts from looping forever.
func insertRandom(host, glyphs string, k int) (string, error) {
	runes := []rune(host)
	ins := []rune(glyphs)
	for i := 0; i < k; i++ {
		idx, err := pickIndex(runes)
		if err != nil {
			return "", err
		}
		grown := make([]rune, 0, len(runes)+len(ins))
		grown = append(grown, runes[:idx]...)
		grown = append(grown, ins...)
		grown = append(grown, runes[idx:]...)
		runes = grown
	}
	return string(runes), nil
}

func pickIndex(runes []rune) (int, error) {
	if len(runes) == 0 {
		return 0, ErrNoInsertionPoint
	}
	for attempt := 0; attempt < maxRandomRetries; attempt++ {
		idx := intn(len(runes))
		if !glyph.IsGlyph(runes[idx]) {
			return idx, nil
		}
	}
	return 0, ErrNoInsertionPoint
}

// insertNthLines appends the carrier to every k-th line, counting from 1.
// A host with fewer than k lines comes back unchanged; that is a no-op,
// not an error.
func insertNthLines(host, glyphs string, k int) string {
	lines := strings.Split(host, "\n")
	counter := 1
	for i := range lines {
		if counter == k {
			lines[i] += glyphs
			counter = 0
		}
		counter++
	}
	return strings.Join(lines, "\n")
}

// insertRandomInLine splices the carrier at a random offset of every line
// at index 0, k, 2k, ... (empty lines take offset 0). Lines off the stride
// are untouched.
func insertRandomInLine(host, glyphs string, k int) string {
	lines := strings.Split(host, "\n")
	for i := 0; i < len(lines); i += k {
		runes := []rune(lines[i])
		off := 0
		if len(runes) > 0 {
			off = intn(len(runes))
		}
		lines[i] = string(runes[:off]) + glyphs + string(runes[off:])
	}
	return strings.Join(lines, "\n")
}
