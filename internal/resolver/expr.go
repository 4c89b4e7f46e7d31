package resolver

import "github.com/funvibe/lox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	if r.failed() || expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
				return
			}
		}
		r.resolveLocal(e.Name, func(d int) { e.Depth = d })

	case *ast.Assignment:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name, func(d int) { e.Depth = d })

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.Keyword, func(d int) { e.Depth = d })

	case *ast.Super:
		if r.currentClass == classNone {
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
			return
		}
		if r.currentClass != classSubclass {
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e.Keyword, func(d int) { e.Depth = d })

	case *ast.Literal:
		// nothing to resolve
	}
}
