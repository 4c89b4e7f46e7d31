package parser_test

import (
	"testing"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
)

func parse(t *testing.T, source string) []ast.Stmt {
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
	return stmts
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, "var a = 1 + 2;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.VarStmt", stmts[0])
	}
	if v.Name.Lexeme != "a" {
		t.Errorf("name = %q, want a", v.Name.Lexeme)
	}
	if _, ok := v.Initializer.(*ast.Binary); !ok {
		t.Errorf("initializer = %T, want *ast.Binary", v.Initializer)
	}
}

func TestParseForDesugaring(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	outer, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("outer = %T, want *ast.BlockStmt", stmts[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("outer block has %d statements, want 2 (init, while)", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement = %T, want *ast.VarStmt", outer.Statements[0])
	}
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement = %T, want *ast.WhileStmt", outer.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("while body = %T, want *ast.BlockStmt", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("while body has %d statements, want 2 (body, increment)", len(body.Statements))
	}
}

func TestParseForOmittedConditionDefaultsTrue(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	outer, ok := stmts[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.WhileStmt", stmts[0])
	}
	lit, ok := outer.Condition.(*ast.Literal)
	if !ok {
		t.Fatalf("condition = %T, want *ast.Literal", outer.Condition)
	}
	if lit.Value != true {
		t.Errorf("condition value = %v, want true", lit.Value)
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := parse(t, "class Cake < Pastry { bake() { return 1; } }")
	class, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[0])
	}
	if class.Name.Lexeme != "Cake" {
		t.Errorf("name = %q, want Cake", class.Name.Lexeme)
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "Pastry" {
		t.Errorf("superclass = %v, want Pastry", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "bake" {
		t.Errorf("methods = %v, want [bake]", class.Methods)
	}
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts := parse(t, "a.b = 1;")
	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExpressionStmt", stmts[0])
	}
	if _, ok := exprStmt.Expression.(*ast.Set); !ok {
		t.Errorf("expression = %T, want *ast.Set", exprStmt.Expression)
	}
}

func TestParseInvalidAssignmentTargetIsError(t *testing.T) {
	lx := lexer.New("1 = 2;")
	tokens := lx.ScanTokens()
	p := parser.New(tokens)
	p.Parse()
	if !p.Errors.HasErrors() {
		t.Fatal("expected a parser error for an invalid assignment target")
	}
}

func TestParseErrorRecoveryCollectsMultipleErrors(t *testing.T) {
	lx := lexer.New("var ; var ;")
	tokens := lx.ScanTokens()
	p := parser.New(tokens)
	p.Parse()
	if len(p.Errors.Errors) < 2 {
		t.Fatalf("got %d errors, want at least 2 (panic-mode recovery should keep parsing)", len(p.Errors.Errors))
	}
}

func TestParseCallChaining(t *testing.T) {
	stmts := parse(t, "foo(1, 2).bar();")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	outer, ok := exprStmt.Expression.(*ast.Call)
	if !ok {
		t.Fatalf("outer = %T, want *ast.Call", exprStmt.Expression)
	}
	get, ok := outer.Callee.(*ast.Get)
	if !ok {
		t.Fatalf("callee = %T, want *ast.Get", outer.Callee)
	}
	if get.Name.Lexeme != "bar" {
		t.Errorf("method name = %q, want bar", get.Name.Lexeme)
	}
	inner, ok := get.Object.(*ast.Call)
	if !ok {
		t.Fatalf("get.Object = %T, want *ast.Call", get.Object)
	}
	if len(inner.Args) != 2 {
		t.Errorf("got %d args, want 2", len(inner.Args))
	}
}

func TestParsePrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	bin, ok := exprStmt.Expression.(*ast.Binary)
	if !ok {
		t.Fatalf("got %T, want *ast.Binary", exprStmt.Expression)
	}
	if _, ok := bin.Left.(*ast.Literal); !ok {
		t.Errorf("left = %T, want *ast.Literal (1)", bin.Left)
	}
	if _, ok := bin.Right.(*ast.Binary); !ok {
		t.Errorf("right = %T, want *ast.Binary (2 * 3)", bin.Right)
	}
}
