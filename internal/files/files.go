// Package files holds the disk-facing helpers the CLI uses around the pure
// text transforms: glob expansion for bulk cleaning and digest-gated
// write-back.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"
)

// Match walks root and returns the relative paths of regular files matching
// the doublestar pattern (e.g. "**/*.md"). Directories never match.
func Match(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if ok, _ := doublestar.Match(pattern, rel); ok {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WriteIfChanged writes data to path only when the content digest differs
// from what is already there, reporting whether a write happened. Keeps
// bulk clean from touching mtimes of files that carried no glyphs.
func WriteIfChanged(path string, data []byte) (bool, error) {
	if old, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(old) == xxhash.Sum64(data) {
			return false, nil
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Digest returns a short hex content digest, used in inspect output to
// fingerprint what a file decodes to.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
