// Package ghostink provides the command-line interface for the Ghostink
// tool. It configures subcommands (embed, reveal, clean, inspect), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/ghostink/ghostink/cmd/ghostink"
//	func main() { ghostink.Execute() }
package ghostink
