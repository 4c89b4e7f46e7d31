package evaluator

import "github.com/funvibe/lox/internal/ast"

// execBlock runs stmts against env in order, short-circuiting on either an
// error or a ctrlReturn signal bubbling up from a nested statement.
func (ev *Evaluator) execBlock(stmts []ast.Stmt, env *Environment) (ctrl, Object, error) {
	for _, stmt := range stmts {
		c, v, err := ev.execStmt(stmt, env)
		if err != nil {
			return ctrlNormal, nil, err
		}
		if c == ctrlReturn {
			return ctrlReturn, v, nil
		}
	}
	return ctrlNormal, nil, nil
}

func (ev *Evaluator) execStmt(stmt ast.Stmt, env *Environment) (ctrl, Object, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := ev.evalExpr(s.Expression, env)
		return ctrlNormal, nil, err

	case *ast.PrintStmt:
		v, err := ev.evalExpr(s.Expression, env)
		if err != nil {
			return ctrlNormal, nil, err
		}
		writeLine(ev.Out, v.Inspect())
		return ctrlNormal, nil, nil

	case *ast.VarStmt:
		value := Object(nilObj)
		if s.Initializer != nil {
			v, err := ev.evalExpr(s.Initializer, env)
			if err != nil {
				return ctrlNormal, nil, err
			}
			value = v
		}
		env.Define(s.Name.Lexeme, value)
		return ctrlNormal, nil, nil

	case *ast.BlockStmt:
		return ev.execBlock(s.Statements, NewEnclosedEnvironment(env))

	case *ast.IfStmt:
		cond, err := ev.evalExpr(s.Condition, env)
		if err != nil {
			return ctrlNormal, nil, err
		}
		if truthy(cond) {
			return ev.execStmt(s.Then, env)
		}
		if s.Else != nil {
			return ev.execStmt(s.Else, env)
		}
		return ctrlNormal, nil, nil

	case *ast.WhileStmt:
		for {
			cond, err := ev.evalExpr(s.Condition, env)
			if err != nil {
				return ctrlNormal, nil, err
			}
			if !truthy(cond) {
				return ctrlNormal, nil, nil
			}
			c, v, err := ev.execStmt(s.Body, env)
			if err != nil {
				return ctrlNormal, nil, err
			}
			if c == ctrlReturn {
				return ctrlReturn, v, nil
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: env, IsInitializer: false}
		env.Define(s.Name.Lexeme, fn)
		return ctrlNormal, nil, nil

	case *ast.ReturnStmt:
		value := Object(nilObj)
		if s.Value != nil {
			v, err := ev.evalExpr(s.Value, env)
			if err != nil {
				return ctrlNormal, nil, err
			}
			value = v
		}
		return ctrlReturn, value, nil

	case *ast.ClassStmt:
		return ev.execClassStmt(s, env)
	}
	return ctrlNormal, nil, nil
}

// execClassStmt implements spec §4.5's five-step class-declaration
// evaluation.
func (ev *Evaluator) execClassStmt(s *ast.ClassStmt, env *Environment) (ctrl, Object, error) {
	env.Define(s.Name.Lexeme, nilObj)

	var superclass *Class
	if s.Superclass != nil {
		v, err := ev.evalExpr(s.Superclass, env)
		if err != nil {
			return ctrlNormal, nil, err
		}
		sc, ok := v.(*Class)
		if !ok {
			return ctrlNormal, nil, runtimeErrorf(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	methodEnv := env
	if superclass != nil {
		methodEnv = NewEnclosedEnvironment(env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	if err := env.Assign(s.Name, class); err != nil {
		return ctrlNormal, nil, err
	}
	return ctrlNormal, nil, nil
}
