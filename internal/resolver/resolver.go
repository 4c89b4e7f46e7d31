// Package resolver is the static pre-evaluation pass that assigns every
// variable-reference expression a lexical depth, fixing the
// closure-over-variables bug naive late binding would exhibit (spec §1,
// §4.3). It writes depths directly onto the referencing ast node (the
// "dedicated field" option spec §9's Design Notes endorses) rather than a
// separate map keyed by stringified subtrees — funvibe-funxy's own
// internal/symbols package tracks scope membership the same way this
// resolver does: a stack of scope maps pushed per block/function/class,
// just over Lox's much smaller declare/define state machine instead of a
// Hindley-Milner symbol table.
package resolver

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Resolver walks a statement tree tracking a stack of block-scope maps.
// Fail-fast: once the first resolution error is recorded, every further
// Resolve call is a no-op (spec §7).
type Resolver struct {
	scopes []map[string]bool

	currentFunction functionKind
	currentClass    classKind

	Errors diagnostics.Bag
}

func New() *Resolver {
	return &Resolver{}
}

// Resolve walks every top-level statement. Call this once per program.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) failed() bool {
	return r.Errors.HasErrors()
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	if r.failed() {
		return
	}
	r.Errors.Add(diagnostics.New(diagnostics.ResolutionError, tok.Line, "%s", message))
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts name -> false (declared, not yet defined) into the
// innermost scope. Redeclaring a name already declared in that same
// non-global scope is a resolution error; in the global (no-frame)
// context redeclaration is allowed (spec §4.3).
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
		return
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-first and, on a match,
// calls setDepth with the number of frames between the reference and the
// owning frame. No match leaves the site unresolved (a global lookup).
func (r *Resolver) resolveLocal(name token.Token, setDepth func(int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			setDepth(len(r.scopes) - 1 - i)
			return
		}
	}
}
