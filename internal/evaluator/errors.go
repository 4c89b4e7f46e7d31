package evaluator

import (
	"strconv"

	"github.com/funvibe/lox/internal/diagnostics"
)

// runtimeErrorf builds a *diagnostics.Error of kind RuntimeError, which
// already implements error — every type mismatch, arity mismatch,
// undefined-variable access, non-instance property access, non-class
// superclass, or arithmetic misuse fails through this single helper
// (spec §7).
func runtimeErrorf(line int, format string, args ...interface{}) error {
	return diagnostics.New(diagnostics.RuntimeError, line, format, args...)
}

// stringifyNumber renders a Number the way spec §4.5's Print bullet
// requires: no trailing ".0" for integral values, fixed-point (never
// scientific) notation otherwise.
func stringifyNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
