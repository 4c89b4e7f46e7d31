// Package evaluator is the tree-walking core: runtime values, the
// Environment scope-frame chain, and the Evaluator that walks the
// statement tree produced by the parser and depth-annotated by the
// resolver. Grounded on funvibe-funxy/internal/evaluator/object.go's
// ObjectType/Object contract, trimmed to Lox's eight-variant value set
// (spec §3) and dropping the typesystem.Type/Hash() members that package
// carries for funxy's Hindley-Milner type system and Map keys, neither of
// which Lox has.
package evaluator

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
)

type ObjectType string

const (
	NUMBER_OBJ    ObjectType = "NUMBER"
	STRING_OBJ    ObjectType = "STRING"
	BOOLEAN_OBJ   ObjectType = "BOOLEAN"
	NIL_OBJ       ObjectType = "NIL"
	NATIVE_FN_OBJ ObjectType = "NATIVE_FN"
	FUNCTION_OBJ  ObjectType = "FUNCTION"
	CLASS_OBJ     ObjectType = "CLASS"
	INSTANCE_OBJ  ObjectType = "INSTANCE"
)

// Object is any Lox runtime value.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Callable is the capability any invocable value exposes: functions,
// classes (as constructors) and native functions, dispatched by matching
// the concrete type inside Call rather than by inheritance (spec §9's
// Design Notes).
type Callable interface {
	Object
	Arity() int
	Call(ev *Evaluator, args []Object) (Object, error)
}

type Number struct{ Value float64 }

func (*Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string { return stringifyNumber(n.Value) }

type String struct{ Value string }

func (*String) Type() ObjectType  { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

type Boolean struct{ Value bool }

func (*Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type Nil struct{}

func (*Nil) Type() ObjectType  { return NIL_OBJ }
func (*Nil) Inspect() string   { return "nil" }

var (
	trueObj  = &Boolean{Value: true}
	falseObj = &Boolean{Value: false}
	nilObj   = &Nil{}
)

func nativeBool(b bool) *Boolean {
	if b {
		return trueObj
	}
	return falseObj
}

// NativeFn wraps a host-implemented builtin, e.g. clock (spec §4.5).
type NativeFn struct {
	Name string
	Ar   int
	Fn   func(ev *Evaluator, args []Object) (Object, error)
}

func (*NativeFn) Type() ObjectType  { return NATIVE_FN_OBJ }
func (n *NativeFn) Inspect() string { return "<native fn " + n.Name + ">" }
func (n *NativeFn) Arity() int      { return n.Ar }
func (n *NativeFn) Call(ev *Evaluator, args []Object) (Object, error) {
	return n.Fn(ev, args)
}

// Function is a user-defined function or method value: the declaring
// FunctionStmt, the environment frame in effect when it was defined (its
// closure), and whether it is the `init` method of some class (spec §3's
// "Function value").
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Bind returns a copy of f whose closure has been extended by one
// synthetic frame defining `this` to instance — a "bound method" per the
// GLOSSARY.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Class is a Lox class value: its name, its own method table, and an
// optional superclass link. Method lookup walks the superclass chain.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() ObjectType  { return CLASS_OBJ }
func (c *Class) Inspect() string { return "<class " + c.Name + ">" }

// FindMethod looks up name on this class, then recursively on the
// superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance, binds and invokes `init` if present, and
// always returns the instance itself (spec §4.5).
func (c *Class) Call(ev *Evaluator, args []Object) (Object, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Object)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(ev, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a Lox object: a link to its class and a mutable field map,
// independent of the class's (immutable-after-declaration) method table.
type Instance struct {
	Class  *Class
	Fields map[string]Object
}

func (*Instance) Type() ObjectType  { return INSTANCE_OBJ }
func (i *Instance) Inspect() string { return i.Class.Name + " instance" }

// Get reads a property: the field map first, then the bound method table
// (spec §4.5's "Get" rule).
func (i *Instance) Get(name token.Token) (Object, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, runtimeErrorf(name.Line, "Undefined property '%s'.", name.Lexeme)
}

func (i *Instance) Set(name token.Token, value Object) {
	i.Fields[name.Lexeme] = value
}
