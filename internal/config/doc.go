// Package config loads Ghostink's optional YAML configuration from a
// directory-local file or the XDG global location. CLI flags always win
// over local config, which wins over global.
package config
