// Package codec converts payload text to and from its invisible carrier
// form: one glyph per bit, eight bits per payload character.
package codec

import (
	"strconv"
	"strings"

	"github.com/ghostink/ghostink/internal/glyph"
)

// Pack renders each payload character's code point as big-endian binary,
// zero-padded to a minimum of 8 bits, and maps every bit to its carrier
// glyph. The empty payload packs to the empty sequence.
//
// Code points above 255 emit more than 8 bits and will not survive Unpack's
// fixed 8-bit framing; payloads are expected to stay within Latin-1. This
// matches the wire format of existing embeddings and is a documented
// limitation, not something to fix here.
func Pack(payload string) string {
	var sb strings.Builder
	for _, r := range payload {
		bits := strconv.FormatInt(int64(r), 2)
		for pad := 8 - len(bits); pad > 0; pad-- {
			sb.WriteRune(glyph.Zero)
		}
		for i := 0; i < len(bits); i++ {
			sb.WriteRune(glyph.ForBit(bits[i]))
		}
	}
	return sb.String()
}

// Unpack reverses Pack. Runes outside the alphabet are skipped and a
// trailing group shorter than 8 bits is dropped, so Unpack is total: any
// input produces some output, malformed input produces garbage rather than
// an error.
func Unpack(text string) string {
	var bits []byte
	for _, r := range text {
		if b, ok := glyph.Bit(r); ok {
			bits = append(bits, b)
		}
	}
	var sb strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		n, _ := strconv.ParseUint(string(bits[i:i+8]), 2, 16)
		sb.WriteRune(rune(n))
	}
	return sb.String()
}

// Extract returns the ordered subsequence of carrier glyphs in text,
// skipping everything else. Never fails; no glyphs means an empty result.
func Extract(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if glyph.IsGlyph(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Strip removes every carrier glyph from text, preserving the order of the
// remaining runes. Strip is idempotent and its output contains no glyphs.
func Strip(text string) string {
	return strings.Map(func(r rune) rune {
		if glyph.IsGlyph(r) {
			return -1
		}
		return r
	}, text)
}

// Run describes one contiguous stretch of carrier glyphs inside a host.
type Run struct {
	Offset int `json:"offset"` // rune offset of the first glyph
	Bits   int `json:"bits"`   // run length in glyphs
}

// Runs locates the contiguous glyph stretches in text, in order. Offsets
// count runes, not bytes, since the carriers are multi-byte in UTF-8.
func Runs(text string) []Run {
	var runs []Run
	pos := 0
	for _, r := range text {
		if glyph.IsGlyph(r) {
			if n := len(runs); n > 0 && runs[n-1].Offset+runs[n-1].Bits == pos {
				runs[n-1].Bits++
			} else {
				runs = append(runs, Run{Offset: pos, Bits: 1})
			}
		}
		pos++
	}
	return runs
}
