package evaluator

import (
	"fmt"
	"io"
)

// truthy implements Lox truthiness: nil and false are the only falsy
// values (spec §3).
func truthy(v Object) bool {
	switch o := v.(type) {
	case *Nil:
		return false
	case *Boolean:
		return o.Value
	default:
		return true
	}
}

// valuesEqual is structural equality for primitives and reference-identity
// equality for functions/classes/instances/native functions (spec §3,
// invariant 6).
func valuesEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}

func writeLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}
