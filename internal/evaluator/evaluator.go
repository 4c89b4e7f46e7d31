package evaluator

import (
	"io"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
)

// ctrl is the non-error control-flow signal a statement execution can
// produce. Per spec §9's Design Notes, `return` is modeled as a tagged
// outcome on the normal result channel (ctrlReturn) rather than folded
// into the error channel, so it can never be mistaken for — or leak out
// as — a RuntimeError.
type ctrl int

const (
	ctrlNormal ctrl = iota
	ctrlReturn
)

// Evaluator walks a resolved statement tree against a chain of
// Environment frames. Grounded on funvibe-funxy/internal/evaluator.Evaluator,
// trimmed to the single Out/Globals/call-depth concerns Lox's much
// smaller runtime needs (no module loader, trait registry, or VM
// callback hooks — this interpreter has no bytecode backend, spec §1).
type Evaluator struct {
	Globals *Environment
	Out     io.Writer

	maxCallDepth int
	callDepth    int
}

// New builds an Evaluator with `clock` preloaded into the global frame
// (spec §4.5's "Native functions").
func New(out io.Writer, maxCallDepth int) *Evaluator {
	globals := NewEnvironment()
	if maxCallDepth <= 0 {
		maxCallDepth = config.DefaultMaxCallDepth
	}
	ev := &Evaluator{Globals: globals, Out: out, maxCallDepth: maxCallDepth}
	registerBuiltins(globals)
	return ev
}

// Interpret runs every top-level statement against the global frame,
// stopping at the first runtime error (spec §7).
func (ev *Evaluator) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if _, _, err := ev.execStmt(stmt, ev.Globals); err != nil {
			return err
		}
	}
	return nil
}
