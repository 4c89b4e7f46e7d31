package evaluator

import "time"

// registerBuiltins installs the native functions available in every Lox
// program's global frame. `clock` is the only one the language defines
// (spec's SUPPLEMENTED FEATURES note on wall-clock precision); it reports
// fractional seconds since the Unix epoch, matching the original tree-
// walking interpreter's own native clock.
func registerBuiltins(globals *Environment) {
	globals.Define("clock", &NativeFn{
		Name: "clock",
		Ar:   0,
		Fn: func(ev *Evaluator, args []Object) (Object, error) {
			return &Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}, nil
		},
	})
}
