// Package glyph defines the fixed two-symbol alphabet of invisible code
// points that carry hidden payload bits. The alphabet is process-wide
// read-only configuration; it is never mutated after init and is safe to
// share without synchronization.
package glyph

// The two carrier code points. Both render as nothing in virtually every
// text display, which is what makes the scheme invisible.
const (
	Zero = '\u200b' // zero-width space, carries a 0 bit
	One  = '\ufeff' // zero-width no-break space, carries a 1 bit
)

// ForBit returns the carrier glyph for a single bit character. Anything
// other than '0' maps to One.
func ForBit(b byte) rune {
	if b == '0' {
		return Zero
	}
	return One
}

// Bit returns the bit character carried by r and whether r belongs to the
// alphabet at all.
func Bit(r rune) (byte, bool) {
	switch r {
	case Zero:
		return '0', true
	case One:
		return '1', true
	}
	return 0, false
}

// IsGlyph reports whether r is one of the two carrier code points.
func IsGlyph(r rune) bool {
	return r == Zero || r == One
}
