package evaluator

import "github.com/funvibe/lox/internal/ast"

// Call invokes f: binds each parameter into a fresh frame off f's closure,
// executes the body, and applies the `init`-always-returns-`this` rule
// (spec §4.5) independently of whatever the body's own return statement,
// if any, produced.
func (f *Function) Call(ev *Evaluator, args []Object) (Object, error) {
	ev.callDepth++
	defer func() { ev.callDepth-- }()
	if ev.callDepth > ev.maxCallDepth {
		return nil, runtimeErrorf(f.Declaration.Name.Line, "Stack overflow.")
	}

	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	_, ret, err := ev.execBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		this, _ := f.Closure.GetAt(0, "this")
		return this, nil
	}
	if ret != nil {
		return ret, nil
	}
	return nilObj, nil
}

// evalCall evaluates the callee and arguments left to right, checks
// arity, and dispatches through Callable (spec §4.5's "Call").
func (ev *Evaluator) evalCall(e *ast.Call, env *Environment) (Object, error) {
	callee, err := ev.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]Object, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := ev.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(ev, args)
}
