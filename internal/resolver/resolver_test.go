package resolver_test

import (
	"testing"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/resolver"
)

func resolve(t *testing.T, source string) ([]ast.Stmt, *resolver.Resolver) {
	t.Helper()
	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	if lx.Errors.HasErrors() {
		t.Fatalf("scan errors: %v", lx.Errors.Errors)
	}
	p := parser.New(tokens)
	stmts := p.Parse()
	if p.Errors.HasErrors() {
		t.Fatalf("parse errors: %v", p.Errors.Errors)
	}
	r := resolver.New()
	r.Resolve(stmts)
	return stmts, r
}

func TestResolveBlockLocalDepth(t *testing.T) {
	stmts, r := resolve(t, `
		var a = "global";
		{
			var a = "inner";
			print a;
		}
	`)
	if r.Errors.HasErrors() {
		t.Fatalf("unexpected resolution errors: %v", r.Errors.Errors)
	}
	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)
	if !v.IsResolved() || v.Depth != 0 {
		t.Errorf("depth = %d, resolved = %v, want depth 0 resolved", v.Depth, v.IsResolved())
	}
}

func TestResolveGlobalLookupUnresolved(t *testing.T) {
	stmts, r := resolve(t, `
		var a = "global";
		print a;
	`)
	if r.Errors.HasErrors() {
		t.Fatalf("unexpected resolution errors: %v", r.Errors.Errors)
	}
	printStmt := stmts[1].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)
	if v.IsResolved() {
		t.Errorf("expected an unresolved (global) variable, got depth %d", v.Depth)
	}
}

func TestResolveSelfReferenceInInitializerIsError(t *testing.T) {
	_, r := resolve(t, `{ var a = a; }`)
	if !r.Errors.HasErrors() {
		t.Fatal("expected a resolution error for self-reference in initializer")
	}
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	_, r := resolve(t, `{ var a = 1; var a = 2; }`)
	if !r.Errors.HasErrors() {
		t.Fatal("expected a resolution error for redeclaring a in the same block scope")
	}
}

func TestResolveGlobalRedeclarationAllowed(t *testing.T) {
	_, r := resolve(t, `var a = 1; var a = 2;`)
	if r.Errors.HasErrors() {
		t.Fatalf("global redeclaration should be allowed: %v", r.Errors.Errors)
	}
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	_, r := resolve(t, `return 1;`)
	if !r.Errors.HasErrors() {
		t.Fatal("expected a resolution error for a top-level return")
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, r := resolve(t, `
		class Cake {
			init() {
				return 1;
			}
		}
	`)
	if !r.Errors.HasErrors() {
		t.Fatal("expected a resolution error for a valued return from init")
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, r := resolve(t, `print this;`)
	if !r.Errors.HasErrors() {
		t.Fatal("expected a resolution error for 'this' outside a class")
	}
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	_, r := resolve(t, `
		class Cake {
			bake() { super.bake(); }
		}
	`)
	if !r.Errors.HasErrors() {
		t.Fatal("expected a resolution error for 'super' with no superclass")
	}
}

func TestResolveMethodThisDepth(t *testing.T) {
	stmts, r := resolve(t, `
		class Cake {
			bake() {
				print this;
			}
		}
	`)
	if r.Errors.HasErrors() {
		t.Fatalf("unexpected resolution errors: %v", r.Errors.Errors)
	}
	class := stmts[0].(*ast.ClassStmt)
	method := class.Methods[0]
	printStmt := method.Body[0].(*ast.PrintStmt)
	this := printStmt.Expression.(*ast.This)
	if !this.IsResolved() {
		t.Error("expected 'this' to resolve to a lexical depth")
	}
}
