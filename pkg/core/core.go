package core

import (
	"github.com/ghostink/ghostink/internal/stego"
	"github.com/ghostink/ghostink/internal/strategy"
)

// Re-export selected internal types as a stable public API surface. These
// are aliases so external consumers can depend on a stable path; they can
// be replaced with decoupled types later without breaking callers.
type Position = strategy.Position

const (
	Top          = strategy.Top
	Bottom       = strategy.Bottom
	Random       = strategy.Random
	NthLines     = strategy.NthLines
	RandomInLine = strategy.RandomInLine
)

// ParsePosition maps a user-supplied name to a Position.
func ParsePosition(s string) (Position, error) { return strategy.Parse(s) }

// Seed makes the random strategies reproducible. Optional; unseeded use
// gets a time-based source.
func Seed(seed int64) { strategy.Seed(seed) }

// Encode hides payload inside host at the chosen position. k is the repeat
// count for Random and the line stride for NthLines/RandomInLine.
func Encode(host, payload string, pos Position, k int) (string, error) {
	return stego.Encode(host, payload, pos, k)
}

// Decode recovers the hidden payload from text. Never fails; text without
// hidden data decodes to "".
func Decode(text string) string { return stego.Decode(text) }

// Clean returns text with every carrier glyph removed.
func Clean(text string) string { return stego.Clean(text) }
