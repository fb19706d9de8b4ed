package sxbuiltins

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

func wantString(name string, obj sx.Object) (*sx.String, error) {
	s, ok := sx.GetString(obj)
	if !ok {
		return nil, sxeval.TypeError{Msg: name + " requires a string, got " + obj.String()}
	}
	return s, nil
}

func wantIndex(name string, obj sx.Object) (int, error) {
	i, ok := obj.(sx.Integer)
	if !ok {
		return 0, sxeval.TypeError{Msg: name + " requires an integer index"}
	}
	return int(i), nil
}

func registerStrings(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "string?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		_, ok := sx.GetString(a[0])
		return sx.Boolean(ok), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "make-string", MinArity: 1, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		n, err := wantIndex("make-string", a[0])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, sxeval.InvalidArgumentError{Msg: "make-string: negative length"}
		}
		fill := ' '
		if len(a) == 2 {
			c, ok := sx.GetCharacter(a[1])
			if !ok {
				return nil, sxeval.TypeError{Msg: "make-string requires a character fill value"}
			}
			fill = rune(c)
		}
		return sx.MakeString(n, fill), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "string-length", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		s, err := wantString("string-length", a[0])
		if err != nil {
			return nil, err
		}
		return sx.Integer(s.Length()), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "string-ref", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		s, err := wantString("string-ref", a[0])
		if err != nil {
			return nil, err
		}
		i, err := wantIndex("string-ref", a[1])
		if err != nil {
			return nil, err
		}
		c, ok := s.Ref(i)
		if !ok {
			return nil, sxeval.InvalidArgumentError{Msg: "string-ref: index out of bounds"}
		}
		return c, nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "string-set!", MinArity: 3, MaxArity: 3, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		s, err := wantString("string-set!", a[0])
		if err != nil {
			return nil, err
		}
		i, err := wantIndex("string-set!", a[1])
		if err != nil {
			return nil, err
		}
		ch, ok := sx.GetCharacter(a[2])
		if !ok {
			return nil, sxeval.TypeError{Msg: "string-set! requires a character"}
		}
		if !s.Set(i, ch) {
			return nil, sxeval.InvalidArgumentError{Msg: "string-set!: index out of bounds"}
		}
		return sx.Nil(), nil
	}})
}
