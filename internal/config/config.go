// Package config holds interpreter-wide constants and the optional
// ambient tuning knobs loaded from a YAML file or LOXCONFIG env var.
// Grounded on funvibe-funxy/internal/config/constants.go (Version var,
// package-level constant groups).
package config

// Version is the current interpreter version, set at build time via
// -ldflags the same way funvibe-funxy's config.Version is.
var Version = "0.1.0"

// MaxArgs is the maximum number of entries a parameter list or an
// argument list may carry (spec §4.2); the 256th entry is a parser error
// but parsing continues.
const MaxArgs = 255

// KeywordCount is the number of reserved words in the scanner's keyword
// table (spec §4.1).
const KeywordCount = 16

// Exit codes, one per phase, per spec §6.
const (
	ExitOK         = 0
	ExitScanner    = 1
	ExitParser     = 2
	ExitRuntime    = 3
	ExitResolution = 4
)

// DefaultMaxCallDepth bounds recursive Lox function calls so pathological
// recursion raises a RuntimeError instead of overflowing the host Go
// stack; see SPEC_FULL.md's "Stack-depth guard" supplement, grounded on
// original_source/src/interpreter.rs's own recursion guard.
const DefaultMaxCallDepth = 1024
