package evaluator

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
)

func (ev *Evaluator) evalExpr(expr ast.Expr, env *Environment) (Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return ev.evalLiteral(e)
	case *ast.Variable:
		return ev.evalVariable(e, env)
	case *ast.Assignment:
		return ev.evalAssignment(e, env)
	case *ast.Unary:
		return ev.evalUnary(e, env)
	case *ast.Binary:
		return ev.evalBinary(e, env)
	case *ast.Logical:
		return ev.evalLogical(e, env)
	case *ast.Grouping:
		return ev.evalExpr(e.Inner, env)
	case *ast.Call:
		return ev.evalCall(e, env)
	case *ast.Get:
		return ev.evalGet(e, env)
	case *ast.Set:
		return ev.evalSet(e, env)
	case *ast.This:
		return ev.evalThis(e, env)
	case *ast.Super:
		return ev.evalSuper(e, env)
	}
	return nilObj, nil
}

func (ev *Evaluator) evalLiteral(e *ast.Literal) (Object, error) {
	switch v := e.Value.(type) {
	case nil:
		return nilObj, nil
	case bool:
		return nativeBool(v), nil
	case float64:
		return &Number{Value: v}, nil
	case string:
		return &String{Value: v}, nil
	}
	return nilObj, nil
}

// evalVariable uses the resolver's recorded depth when present, otherwise
// falls back to a global-frame lookup (spec §4.5).
func (ev *Evaluator) evalVariable(e *ast.Variable, env *Environment) (Object, error) {
	if e.IsResolved() {
		v, ok := env.GetAt(e.Depth, e.Name.Lexeme)
		if !ok {
			return nil, runtimeErrorf(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil
	}
	return ev.Globals.Get(e.Name)
}

func (ev *Evaluator) evalAssignment(e *ast.Assignment, env *Environment) (Object, error) {
	value, err := ev.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	if e.IsResolved() {
		env.AssignAt(e.Depth, e.Name.Lexeme, value)
		return value, nil
	}
	if err := ev.Globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (ev *Evaluator) evalUnary(e *ast.Unary, env *Environment) (Object, error) {
	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(*Number)
		if !ok {
			return nil, runtimeErrorf(e.Operator.Line, "Operand must be a number.")
		}
		return &Number{Value: -n.Value}, nil
	case token.BANG:
		return nativeBool(!truthy(right)), nil
	}
	return nilObj, nil
}

func (ev *Evaluator) evalLogical(e *ast.Logical, env *Environment) (Object, error) {
	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if truthy(left) {
			return left, nil
		}
		return ev.evalExpr(e.Right, env)
	}
	// and
	if !truthy(left) {
		return left, nil
	}
	return ev.evalExpr(e.Right, env)
}

func (ev *Evaluator) evalBinary(e *ast.Binary, env *Environment) (Object, error) {
	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		if ln, ok := left.(*Number); ok {
			if rn, ok := right.(*Number); ok {
				return &Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(*String); ok {
			if rs, ok := right.(*String); ok {
				return &String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, runtimeErrorf(e.Operator.Line, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH:
		ln, lok := left.(*Number)
		rn, rok := right.(*Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.MINUS:
			return &Number{Value: ln.Value - rn.Value}, nil
		case token.STAR:
			return &Number{Value: ln.Value * rn.Value}, nil
		default:
			return &Number{Value: ln.Value / rn.Value}, nil
		}

	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(*Number)
		rn, rok := right.(*Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.GREATER:
			return nativeBool(ln.Value > rn.Value), nil
		case token.GREATER_EQUAL:
			return nativeBool(ln.Value >= rn.Value), nil
		case token.LESS:
			return nativeBool(ln.Value < rn.Value), nil
		default:
			return nativeBool(ln.Value <= rn.Value), nil
		}

	case token.BANG_EQUAL:
		return nativeBool(!valuesEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return nativeBool(valuesEqual(left, right)), nil
	}

	return nilObj, nil
}

func (ev *Evaluator) evalGet(e *ast.Get, env *Environment) (Object, error) {
	obj, err := ev.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (ev *Evaluator) evalSet(e *ast.Set, env *Environment) (Object, error) {
	obj, err := ev.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have fields.")
	}
	value, err := ev.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (ev *Evaluator) evalThis(e *ast.This, env *Environment) (Object, error) {
	v, ok := env.GetAt(e.Depth, "this")
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "Undefined variable 'this'.")
	}
	return v, nil
}

// evalSuper reads `super` at the recorded depth (a *Class), `this` one
// frame deeper (the receiving *Instance), finds the method on the
// superclass chain, and returns it bound to `this` (spec §4.5).
func (ev *Evaluator) evalSuper(e *ast.Super, env *Environment) (Object, error) {
	superVal, ok := env.GetAt(e.Depth, "super")
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "Undefined variable 'super'.")
	}
	super := superVal.(*Class)

	thisVal, ok := env.GetAt(e.Depth-1, "this")
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "Undefined variable 'this'.")
	}
	instance := thisVal.(*Instance)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
