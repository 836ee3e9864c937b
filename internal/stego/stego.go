// Package stego wires the codec and the embedding strategies into the four
// operations the CLI exposes: encode, decode, clean, and their file-reading
// variants.
package stego

import (
	"fmt"
	"os"

	"github.com/ghostink/ghostink/internal/codec"
	"github.com/ghostink/ghostink/internal/strategy"
)

// Encode hides payload inside host at the location selected by pos. k is
// the strategy repeat/stride count; see strategy.Insert. An empty payload
// returns the host unchanged.
func Encode(host, payload string, pos strategy.Position, k int) (string, error) {
	return strategy.Insert(host, codec.Pack(payload), pos, k)
}

// Decode recovers the hidden payload from text. Decode is best-effort and
// never fails: text without carrier glyphs decodes to "", malformed carrier
// data degrades to garbage output rather than an error.
func Decode(text string) string {
	return codec.Unpack(codec.Extract(text))
}

// Clean returns text with every carrier glyph removed, restoring the host
// verbatim for top/bottom embeddings. Clean is idempotent.
func Clean(text string) string {
	return codec.Strip(text)
}

// readSource reads the named file as UTF-8 text. All failure modes fold
// into one generic error; callers report it and abort without writing
// anything.
func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read source file %s: %w", path, err)
	}
	return string(b), nil
}

// EncodeFile reads the host from path and delegates to Encode.
func EncodeFile(path, payload string, pos strategy.Position, k int) (string, error) {
	host, err := readSource(path)
	if err != nil {
		return "", err
	}
	return Encode(host, payload, pos, k)
}

// DecodeFile reads embedded text from path and delegates to Decode.
func DecodeFile(path string) (string, error) {
	text, err := readSource(path)
	if err != nil {
		return "", err
	}
	return Decode(text), nil
}

// CleanFile reads text from path and delegates to Clean.
func CleanFile(path string) (string, error) {
	text, err := readSource(path)
	if err != nil {
		return "", err
	}
	return Clean(text), nil
}
