package sxeval

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxenv"
	"t73f.de/r/zero/set"
)

// RegisterSpecialForms installs the eight primitives described in §4.4 of
// the specification: define, set!, if, lambda, quote, quasiquote, begin,
// defmacro.
func RegisterSpecialForms(ev *Evaluator) {
	ev.DefinePrimitive(&Primitive{Name: "define", Fn: primDefine})
	ev.DefinePrimitive(&Primitive{Name: "set!", Fn: primSet})
	ev.DefinePrimitive(&Primitive{Name: "if", Fn: primIf})
	ev.DefinePrimitive(&Primitive{Name: "lambda", Fn: primLambda})
	ev.DefinePrimitive(&Primitive{Name: "quote", Fn: primQuote})
	ev.DefinePrimitive(&Primitive{Name: "quasiquote", Fn: primQuasiquote})
	ev.DefinePrimitive(&Primitive{Name: "begin", Fn: primBegin})
	ev.DefinePrimitive(&Primitive{Name: "defmacro", Fn: primDefmacro})
}

// parseParams splits a parameter spec - (), (p1 p2 ...), or (p1 ... . rest)
// - into its fixed parameters and optional rest parameter.
func parseParams(spec sx.Object) ([]*sx.Symbol, *sx.Symbol, error) {
	var params []*sx.Symbol
	switch v := spec.(type) {
	case *sx.Symbol:
		// (lambda args body...) binds the whole argument list to args.
		return nil, v, nil
	case *sx.Pair:
		node := v
		for node != nil {
			sym, ok := sx.GetSymbol(node.Car())
			if !ok {
				return nil, nil, SyntaxError{Msg: "malformed parameter list: not a symbol"}
			}
			params = append(params, sym)
			switch cdr := node.Cdr().(type) {
			case *sx.Pair:
				node = cdr
			default:
				if sx.IsNil(cdr) {
					return checkDistinctParams(params, nil)
				}
				rest, ok := sx.GetSymbol(cdr)
				if !ok {
					return nil, nil, SyntaxError{Msg: "malformed parameter list: bad rest parameter"}
				}
				return checkDistinctParams(params, rest)
			}
		}
		return checkDistinctParams(params, nil)
	default:
		if sx.IsNil(spec) {
			return nil, nil, nil
		}
		return nil, nil, SyntaxError{Msg: "malformed parameter list"}
	}
}

// checkDistinctParams rejects a parameter list that binds the same symbol
// twice, using a set to compare the distinct-element count against the
// slice length in one pass.
func checkDistinctParams(params []*sx.Symbol, rest *sx.Symbol) ([]*sx.Symbol, *sx.Symbol, error) {
	all := append([]*sx.Symbol{}, params...)
	if rest != nil {
		all = append(all, rest)
	}
	if set.New(all...).Length() != len(all) {
		return nil, nil, SyntaxError{Msg: "duplicate parameter name"}
	}
	return params, rest, nil
}

func primDefine(ev *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if args == nil {
		return nil, SyntaxError{Msg: "define requires a target and a value"}
	}
	switch target := args.Car().(type) {
	case *sx.Symbol:
		rest := args.Tail()
		var val sx.Object = sx.Nil()
		var err error
		if rest != nil {
			val, err = ev.Eval(rest.Car(), frame)
			if err != nil {
				return nil, err
			}
		}
		return sx.Nil(), defineInFrame(ev, frame, target, val)
	case *sx.Pair:
		// (define (name p1 ... [. rest]) body...) sugar for
		// (define name (lambda (p1 ... [. rest]) body...)).
		name, ok := sx.GetSymbol(target.Car())
		if !ok {
			return nil, SyntaxError{Msg: "malformed define: procedure name must be a symbol"}
		}
		params, rest, err := parseParams(target.Cdr())
		if err != nil {
			return nil, err
		}
		body := args.Tail()
		if body == nil {
			return nil, SyntaxError{Msg: "define requires at least one body form"}
		}
		lambda := &Lambda{Name: name.Name(), Params: params, Rest: rest, Body: body, Env: frame}
		return sx.Nil(), defineInFrame(ev, frame, name, lambda)
	default:
		return nil, SyntaxError{Msg: "malformed define"}
	}
}

// defineInFrame performs the `define` binding, with two rules chosen from
// the open questions in §9: a built-in name may only be shadowed inside a
// nested (non-top-level) frame, and redefining a symbol already bound in
// the very same frame raises only at the top level - a nested lambda body
// may redefine freely.
func defineInFrame(ev *Evaluator, frame *sxenv.Frame, sym *sx.Symbol, val sx.Object) error {
	if frame == ev.Global {
		if _, isBuiltin := ev.Builtins().LocalLookup(sym); isBuiltin {
			return TypeError{Msg: "cannot redefine built-in procedure " + sym.Name() + " at top level"}
		}
		return frame.Define(sym, val)
	}
	frame.DefineOrReplace(sym, val)
	return nil
}

func primSet(ev *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if args == nil || args.Tail() == nil {
		return nil, SyntaxError{Msg: "set! requires a symbol and a value"}
	}
	sym, ok := sx.GetSymbol(args.Car())
	if !ok {
		return nil, SyntaxError{Msg: "set! requires a symbol"}
	}
	val, err := ev.Eval(args.Tail().Car(), frame)
	if err != nil {
		return nil, err
	}
	if err := frame.Assign(sym, val); err != nil {
		return nil, err
	}
	return sx.Nil(), nil
}

func primIf(ev *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if args == nil {
		return nil, SyntaxError{Msg: "if requires a test expression"}
	}
	test, err := ev.Eval(args.Car(), frame)
	if err != nil {
		return nil, err
	}
	rest := args.Tail()
	if rest == nil {
		return nil, SyntaxError{Msg: "if requires a consequent"}
	}
	if sx.IsTruthy(test) {
		return ev.Eval(rest.Car(), frame)
	}
	alt := rest.Tail()
	if alt == nil {
		return sx.Nil(), nil
	}
	return ev.Eval(alt.Car(), frame)
}

func primLambda(_ *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if args == nil {
		return nil, SyntaxError{Msg: "lambda requires a parameter list"}
	}
	params, rest, err := parseParams(args.Car())
	if err != nil {
		return nil, err
	}
	body := args.Tail()
	if body == nil {
		return nil, SyntaxError{Msg: "lambda requires at least one body form"}
	}
	return &Lambda{Params: params, Rest: rest, Body: body, Env: frame}, nil
}

func primQuote(_ *Evaluator, args *sx.Pair, _ *sxenv.Frame) (sx.Object, error) {
	if args == nil {
		return nil, SyntaxError{Msg: "quote requires exactly one datum"}
	}
	return args.Car(), nil
}

func primQuasiquote(ev *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if args == nil {
		return nil, SyntaxError{Msg: "quasiquote requires exactly one template"}
	}
	return ev.quasiquote(args.Car(), frame)
}

func primBegin(ev *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	var result sx.Object = sx.Nil()
	var err error
	for node := args; node != nil; node = node.Tail() {
		result, err = ev.Eval(node.Car(), frame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func primDefmacro(_ *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if args == nil || args.Tail() == nil {
		return nil, SyntaxError{Msg: "defmacro requires a name and a parameter list"}
	}
	name, ok := sx.GetSymbol(args.Car())
	if !ok {
		return nil, SyntaxError{Msg: "defmacro requires a symbol name"}
	}
	paramSpec := args.Tail()
	params, rest, err := parseParams(paramSpec.Car())
	if err != nil {
		return nil, err
	}
	body := paramSpec.Tail()
	if body == nil {
		return nil, SyntaxError{Msg: "defmacro requires at least one body form"}
	}
	macro := &Macro{Name: name.Name(), Params: params, Rest: rest, Body: body, Env: frame}
	frame.DefineOrReplace(name, macro)
	return sx.Nil(), nil
}
