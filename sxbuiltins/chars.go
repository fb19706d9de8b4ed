package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

func wantCharacters(name string, args []sx.Object) ([]sx.Character, error) {
	chars := make([]sx.Character, len(args))
	for i, a := range args {
		c, ok := sx.GetCharacter(a)
		if !ok {
			return nil, sxeval.TypeError{Msg: name + " requires characters"}
		}
		chars[i] = c
	}
	return chars, nil
}

func registerCharComparison(ev *sxeval.Evaluator, name string, cmp func(x, y sx.Character) bool) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: name, MinArity: 1, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		chars, err := wantCharacters(name, a)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(chars); i++ {
			if !cmp(chars[i-1], chars[i]) {
				return sx.False, nil
			}
		}
		return sx.True, nil
	}})
}

func registerCharacters(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "char?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		_, ok := sx.GetCharacter(a[0])
		return sx.Boolean(ok), nil
	}})
	registerCharComparison(ev, "char=?", func(x, y sx.Character) bool { return x == y })
	registerCharComparison(ev, "char<?", func(x, y sx.Character) bool { return x < y })
	registerCharComparison(ev, "char>?", func(x, y sx.Character) bool { return x > y })
	registerCharComparison(ev, "char<=?", func(x, y sx.Character) bool { return x <= y })
	registerCharComparison(ev, "char>=?", func(x, y sx.Character) bool { return x >= y })
}
