package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

// registerTypePredicates installs the predicates not already covered
// alongside their own type's constructors (null?, pair?, list?, number?,
// string?, vector?, char? live in pairs.go/numbers.go/strings.go/vectors.go/
// chars.go). boolean? is defined in the prelude per the standard library
// source.
func registerTypePredicates(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "symbol?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		_, ok := sx.GetSymbol(a[0])
		return sx.Boolean(ok), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "procedure?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.Boolean(sxeval.IsProcedure(a[0])), nil
	}})
}
