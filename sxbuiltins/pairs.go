package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

func wantPair(name string, obj sx.Object) (*sx.Pair, error) {
	p, ok := obj.(*sx.Pair)
	if !ok || p == nil {
		return nil, sxeval.TypeError{Msg: name + " requires a pair"}
	}
	return p, nil
}

func registerPairs(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "cons", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.Cons(a[0], a[1]), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "car", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		p, err := wantPair("car", a[0])
		if err != nil {
			return nil, err
		}
		return p.Car(), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "cdr", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		p, err := wantPair("cdr", a[0])
		if err != nil {
			return nil, err
		}
		return p.Cdr(), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "set-car!", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		p, err := wantPair("set-car!", a[0])
		if err != nil {
			return nil, err
		}
		p.SetCar(a[1])
		return sx.Nil(), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "set-cdr!", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		p, err := wantPair("set-cdr!", a[0])
		if err != nil {
			return nil, err
		}
		p.SetCdr(a[1])
		return sx.Nil(), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "null?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.Boolean(sx.IsNil(a[0])), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "pair?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		p, ok := a[0].(*sx.Pair)
		return sx.Boolean(ok && p != nil), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "list?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.Boolean(sx.IsList(a[0])), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "list", MinArity: 0, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		return sx.MakeList(a...), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "length", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		p, ok := a[0].(*sx.Pair)
		if !ok {
			return nil, sxeval.TypeError{Msg: "length requires a list"}
		}
		n, err := p.Length()
		if err != nil {
			if err == sx.ErrCircularList {
				return nil, sxeval.CircularListError{Msg: "length of a circular list is undefined"}
			}
			return nil, sxeval.TypeError{Msg: "length requires a proper list"}
		}
		return sx.Integer(n), nil
	}})

	registerCxrCombinators(ev)
}

// registerCxrCombinators installs the c[ad]{2,4}r family, e.g. cadr,
// caddr, cddddr: each letter is applied right to left, `a` for car and
// `d` for cdr.
func registerCxrCombinators(ev *sxeval.Evaluator) {
	for _, ops := range cxrNames() {
		ops := ops
		name := "c" + ops + "r"
		ev.DefineBuiltin(&sxeval.Builtin{Name: name, MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
			val := a[0]
			for i := len(ops) - 1; i >= 0; i-- {
				p, err := wantPair(name, val)
				if err != nil {
					return nil, err
				}
				if ops[i] == 'a' {
					val = p.Car()
				} else {
					val = p.Cdr()
				}
			}
			return val, nil
		}})
	}
}

// cxrNames enumerates every combination of 'a'/'d' of length 2 through 4,
// matching the "up to four levels" requirement.
func cxrNames() []string {
	var names []string
	for n := 2; n <= 4; n++ {
		names = append(names, genCombos(n)...)
	}
	return names
}

func genCombos(n int) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, suffix := range genCombos(n - 1) {
		out = append(out, "a"+suffix, "d"+suffix)
	}
	return out
}
