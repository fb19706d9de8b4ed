package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

// registerEquivalence installs eq? and eqv?. Both defer to each object's
// own IsEqv, which already implements the right notion of identity per
// type: pointer identity for pairs/strings/vectors/procedures, value
// identity for symbols/booleans/characters/numbers.
func registerEquivalence(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "eq?", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.Boolean(a[0].IsEqv(a[1])), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "eqv?", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.Boolean(a[0].IsEqv(a[1])), nil
	}})
}
