package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

// registerIO installs display and newline, writing to the Evaluator's Out
// sink so a REPL and a file-mode run can route output identically.
func registerIO(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "display", MinArity: 1, MaxArity: 1, Fn: func(e *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		if _, err := sx.Print(e.Out, a[0]); err != nil {
			return nil, err
		}
		return sx.Nil(), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "newline", MinArity: 0, MaxArity: 0, Fn: func(e *sxeval.Evaluator, _ []sx.Object) (sx.Object, error) {
		if _, err := e.Out.Write([]byte{'\n'}); err != nil {
			return nil, err
		}
		return sx.Nil(), nil
	}})
}
