package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

func wantVector(name string, obj sx.Object) (*sx.Vector, error) {
	v, ok := sx.GetVector(obj)
	if !ok {
		return nil, sxeval.TypeError{Msg: name + " requires a vector, got " + obj.String()}
	}
	return v, nil
}

func registerVectors(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "vector?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		_, ok := sx.GetVector(a[0])
		return sx.Boolean(ok), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "make-vector", MinArity: 1, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		n, err := wantIndex("make-vector", a[0])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, sxeval.InvalidArgumentError{Msg: "make-vector: negative length"}
		}
		var fill sx.Object = sx.Integer(0)
		if len(a) == 2 {
			fill = a[1]
		}
		return sx.MakeVector(n, fill), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "vector-length", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		v, err := wantVector("vector-length", a[0])
		if err != nil {
			return nil, err
		}
		return sx.Integer(v.Len()), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "vector-ref", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		v, err := wantVector("vector-ref", a[0])
		if err != nil {
			return nil, err
		}
		i, err := wantIndex("vector-ref", a[1])
		if err != nil {
			return nil, err
		}
		val, ok := v.Ref(i)
		if !ok {
			return nil, sxeval.InvalidArgumentError{Msg: "vector-ref: index out of bounds"}
		}
		return val, nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "vector-set!", MinArity: 3, MaxArity: 3, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		v, err := wantVector("vector-set!", a[0])
		if err != nil {
			return nil, err
		}
		i, err := wantIndex("vector-set!", a[1])
		if err != nil {
			return nil, err
		}
		if !v.Set(i, a[2]) {
			return nil, sxeval.InvalidArgumentError{Msg: "vector-set!: index out of bounds"}
		}
		return sx.Nil(), nil
	}})
	// vector-fill! itself is defined in the prelude in terms of
	// vector-set!/vector-length, per the standard-library source.
}
