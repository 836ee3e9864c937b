// Package core provides a small, stable facade over Ghostink's internal
// codec and strategy engine for external integrations. It deliberately
// re-exports a narrow API surface so other tools can depend on a stable
// import path without reaching into internal packages.
//
// Example:
//
//	out, err := core.Encode("host text", "payload", core.Bottom, 1)
//	if err != nil { /* handle */ }
//	payload := core.Decode(out)
package core
