// Package diagnostics is the interpreter's unified failure taxonomy: every
// phase (scanner, parser, resolver, evaluator) reports through the same
// Error type, and a single Reporter formats them for stderr. Grounded on
// the internal/diagnostics package funvibe-funxy's parser and evaluator
// Processor stages report through (itself not present in the retrieved
// pack, only its call sites), adapted to this spec's four-kind taxonomy
// and its one-line `[line N] Error: MESSAGE` wire format.
package diagnostics

import (
	"fmt"
	"io"
)

// Kind tags which phase raised an Error, which in turn selects the process
// exit code per spec §6.
type Kind int

const (
	ScannerError Kind = iota
	ParserError
	ResolutionError
	RuntimeError
)

// ExitCode is the process exit code a phase's error kind maps to.
func (k Kind) ExitCode() int {
	switch k {
	case ScannerError:
		return 1
	case ParserError:
		return 2
	case RuntimeError:
		return 3
	case ResolutionError:
		return 4
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case ScannerError:
		return "ScannerError"
	case ParserError:
		return "ParserError"
	case ResolutionError:
		return "ResolutionError"
	case RuntimeError:
		return "RuntimeError"
	default:
		return "Error"
	}
}

// Error is a single diagnostic: the phase that raised it, the 1-based
// source line, and a single-line message.
type Error struct {
	Kind    Kind
	Line    int
	Message string
}

// New constructs an Error of the given kind at the given line.
func New(kind Kind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface with the spec's wire format:
// `[line N] Error: MESSAGE`.
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Bag aggregates every Error raised within a single phase (the scanner and
// the parser keep going and may collect more than one before reporting; the
// resolver and evaluator fail fast on their first Error, but still use Bag
// so the reporting code path is uniform).
type Bag struct {
	Errors []*Error
}

func (b *Bag) Add(e *Error) {
	b.Errors = append(b.Errors, e)
}

func (b *Bag) HasErrors() bool {
	return len(b.Errors) > 0
}

// Kind returns the kind of the first collected error, which is always the
// kind of every error in the bag since a bag is scoped to one phase.
func (b *Bag) Kind() Kind {
	if len(b.Errors) == 0 {
		return ScannerError
	}
	return b.Errors[0].Kind
}

// ExitCode returns the process exit code for this bag's phase, or 0 if the
// bag is empty.
func (b *Bag) ExitCode() int {
	if !b.HasErrors() {
		return 0
	}
	return b.Kind().ExitCode()
}

// Report writes every collected error to w, one per line, in collection
// order (source order for parser errors per spec §6).
func (b *Bag) Report(w io.Writer, r *Reporter) {
	for _, e := range b.Errors {
		r.write(w, e)
	}
}
