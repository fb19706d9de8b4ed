package sxbuiltins

import (
	"math"

	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxeval"
)

func wantNumber(name string, obj sx.Object) (sx.Number, error) {
	n, ok := sx.GetNumber(obj)
	if !ok {
		return nil, sxeval.TypeError{Msg: name + " requires a number, got " + obj.String()}
	}
	return n, nil
}

func wantNumbers(name string, args []sx.Object) ([]sx.Number, error) {
	nums := make([]sx.Number, len(args))
	for i, a := range args {
		n, err := wantNumber(name, a)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

// wantInteger requires an exact Integer, used by quotient/modulo/remainder.
func wantInteger(name string, obj sx.Object) (int64, error) {
	i, ok := obj.(sx.Integer)
	if !ok {
		return 0, sxeval.TypeError{Msg: name + " requires an integer, got " + obj.String()}
	}
	return int64(i), nil
}

func registerNumbers(ev *sxeval.Evaluator) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: "+", MinArity: 0, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		nums, err := wantNumbers("+", a)
		if err != nil {
			return nil, err
		}
		return sumNumbers(nums), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "*", MinArity: 0, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		nums, err := wantNumbers("*", a)
		if err != nil {
			return nil, err
		}
		return productNumbers(nums), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "-", MinArity: 1, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		nums, err := wantNumbers("-", a)
		if err != nil {
			return nil, err
		}
		if len(nums) == 1 {
			return negateNumber(nums[0]), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc = subNumbers(acc, n)
		}
		return acc, nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "/", MinArity: 1, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		nums, err := wantNumbers("/", a)
		if err != nil {
			return nil, err
		}
		if len(nums) == 1 {
			return divNumbers(sx.Integer(1), nums[0])
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			var err error
			acc, err = divNumbers(acc, n)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}})

	registerComparison(ev, "=", func(x, y sx.Number) bool { return sx.NumEqual(x, y) })
	registerComparison(ev, "<", sx.NumLess)
	registerComparison(ev, ">", func(x, y sx.Number) bool { return sx.NumLess(y, x) })
	registerComparison(ev, "<=", func(x, y sx.Number) bool { return !sx.NumLess(y, x) })
	registerComparison(ev, ">=", func(x, y sx.Number) bool { return !sx.NumLess(x, y) })

	ev.DefineBuiltin(&sxeval.Builtin{Name: "quotient", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		x, err := wantInteger("quotient", a[0])
		if err != nil {
			return nil, err
		}
		y, err := wantInteger("quotient", a[1])
		if err != nil {
			return nil, err
		}
		if y == 0 {
			return nil, sxeval.InvalidArgumentError{Msg: "quotient: division by zero"}
		}
		return sx.Integer(x / y), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "remainder", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		x, err := wantInteger("remainder", a[0])
		if err != nil {
			return nil, err
		}
		y, err := wantInteger("remainder", a[1])
		if err != nil {
			return nil, err
		}
		if y == 0 {
			return nil, sxeval.InvalidArgumentError{Msg: "remainder: division by zero"}
		}
		return sx.Integer(x % y), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "modulo", MinArity: 2, MaxArity: 2, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		x, err := wantInteger("modulo", a[0])
		if err != nil {
			return nil, err
		}
		y, err := wantInteger("modulo", a[1])
		if err != nil {
			return nil, err
		}
		if y == 0 {
			return nil, sxeval.InvalidArgumentError{Msg: "modulo: division by zero"}
		}
		m := x % y
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		return sx.Integer(m), nil
	}})

	ev.DefineBuiltin(&sxeval.Builtin{Name: "exp", MinArity: 1, MaxArity: 1, Fn: unaryFloatFn("exp", math.Exp)})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "log", MinArity: 1, MaxArity: 1, Fn: unaryFloatFn("log", math.Log)})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "sqrt", MinArity: 1, MaxArity: 1, Fn: unaryFloatFn("sqrt", math.Sqrt)})

	ev.DefineBuiltin(&sxeval.Builtin{Name: "number?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		_, ok := sx.GetNumber(a[0])
		return sx.Boolean(ok), nil
	}})
	// complex?, real?, rational? coincide with number? since the tower has
	// no complex or ratio type.
	for _, name := range []string{"complex?", "real?", "rational?"} {
		name := name
		ev.DefineBuiltin(&sxeval.Builtin{Name: name, MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
			_, ok := sx.GetNumber(a[0])
			return sx.Boolean(ok), nil
		}})
	}
	ev.DefineBuiltin(&sxeval.Builtin{Name: "exact?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		n, err := wantNumber("exact?", a[0])
		if err != nil {
			return nil, err
		}
		_, ok := n.(sx.Integer)
		return sx.Boolean(ok), nil
	}})
	ev.DefineBuiltin(&sxeval.Builtin{Name: "inexact?", MinArity: 1, MaxArity: 1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		n, err := wantNumber("inexact?", a[0])
		if err != nil {
			return nil, err
		}
		_, ok := n.(sx.Float)
		return sx.Boolean(ok), nil
	}})
}

func unaryFloatFn(name string, fn func(float64) float64) sxeval.BuiltinFn {
	return func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		n, err := wantNumber(name, a[0])
		if err != nil {
			return nil, err
		}
		return sx.Float(fn(n.Float64())), nil
	}
}

func registerComparison(ev *sxeval.Evaluator, name string, cmp func(x, y sx.Number) bool) {
	ev.DefineBuiltin(&sxeval.Builtin{Name: name, MinArity: 1, MaxArity: -1, Fn: func(_ *sxeval.Evaluator, a []sx.Object) (sx.Object, error) {
		nums, err := wantNumbers(name, a)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(nums); i++ {
			if !cmp(nums[i-1], nums[i]) {
				return sx.False, nil
			}
		}
		return sx.True, nil
	}})
}

func sumNumbers(nums []sx.Number) sx.Number {
	if allIntegers(nums) {
		var total int64
		for _, n := range nums {
			total += int64(n.(sx.Integer))
		}
		return sx.Integer(total)
	}
	var total float64
	for _, n := range nums {
		total += n.Float64()
	}
	return sx.Float(total)
}

func productNumbers(nums []sx.Number) sx.Number {
	if allIntegers(nums) {
		total := int64(1)
		for _, n := range nums {
			total *= int64(n.(sx.Integer))
		}
		return sx.Integer(total)
	}
	total := 1.0
	for _, n := range nums {
		total *= n.Float64()
	}
	return sx.Float(total)
}

func subNumbers(x, y sx.Number) sx.Number {
	xi, xok := x.(sx.Integer)
	yi, yok := y.(sx.Integer)
	if xok && yok {
		return xi - yi
	}
	return sx.Float(x.Float64() - y.Float64())
}

func negateNumber(x sx.Number) sx.Number {
	if xi, ok := x.(sx.Integer); ok {
		return -xi
	}
	return sx.Float(-x.Float64())
}

// divNumbers always promotes to Float, matching the reference
// implementation's "/" semantics: exact-integer division is not part of
// this dialect's numeric tower.
func divNumbers(x, y sx.Number) (sx.Number, error) {
	if y.IsZero() {
		return nil, sxeval.InvalidArgumentError{Msg: "/: division by zero"}
	}
	return sx.Float(x.Float64() / y.Float64()), nil
}

func allIntegers(nums []sx.Number) bool {
	for _, n := range nums {
		if _, ok := n.(sx.Integer); !ok {
			return false
		}
	}
	return true
}
