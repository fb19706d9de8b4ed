package sxeval

import (
	"fmt"

	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxenv"
)

// BuiltinFn is the implementation of a built-in procedure: it receives
// already-evaluated argument values.
type BuiltinFn func(ev *Evaluator, args []sx.Object) (sx.Object, error)

// Builtin is a named primitive procedure whose arguments are pre-evaluated
// by the caller. MaxArity < 0 means unbounded.
type Builtin struct {
	Name              string
	MinArity, MaxArity int
	Fn                BuiltinFn
}

func (b *Builtin) String() string   { return fmt.Sprintf("#<built-in function %s>", b.Name) }
func (*Builtin) IsAtom() bool       { return true }
func (b *Builtin) IsEqv(o sx.Object) bool {
	ob, ok := o.(*Builtin)
	return ok && b == ob
}

// CheckArity validates the number of evaluated arguments against the
// built-in's declared arity bounds.
func (b *Builtin) CheckArity(n int) error {
	if n < b.MinArity || (b.MaxArity >= 0 && n > b.MaxArity) {
		return ArityError{Name: b.Name, Got: n, Min: b.MinArity, Max: b.MaxArity}
	}
	return nil
}

// PrimitiveFn is the implementation of a special form: it receives the
// unevaluated argument forms and the environment frame active at the call
// site, and may mutate that frame (e.g. `define`, `set!`).
type PrimitiveFn func(ev *Evaluator, args *sx.Pair, frame *sxenv.Frame) (sx.Object, error)

// Primitive is a special form: a named syntactic construct whose operands
// are not pre-evaluated.
type Primitive struct {
	Name string
	Fn   PrimitiveFn
}

func (p *Primitive) String() string { return fmt.Sprintf("#<primitive function %s>", p.Name) }
func (*Primitive) IsAtom() bool     { return true }
func (p *Primitive) IsEqv(o sx.Object) bool {
	op, ok := o.(*Primitive)
	return ok && p == op
}

// Lambda is a user-defined procedure: a fixed (possibly empty) list of
// required parameters, an optional rest parameter bound to the trailing
// arguments, a body of one or more forms evaluated as an implicit `begin`,
// and the lexical frame captured when the lambda expression was evaluated.
type Lambda struct {
	Name   string // "" for an anonymous lambda
	Params []*sx.Symbol
	Rest   *sx.Symbol // nil if there is no rest parameter
	Body   *sx.Pair
	Env    *sxenv.Frame
}

func (l *Lambda) String() string {
	if l.Name == "" {
		return "#<anonymous function>"
	}
	return fmt.Sprintf("#<user function %s>", l.Name)
}
func (*Lambda) IsAtom() bool { return true }
func (l *Lambda) IsEqv(o sx.Object) bool {
	ol, ok := o.(*Lambda)
	return ok && l == ol
}

// CheckArity validates n evaluated arguments against the lambda's
// parameter list, per the rules in §4.4 of the specification: exactly
// len(Params) when there is no rest parameter, at least len(Params)
// otherwise.
func (l *Lambda) CheckArity(n int) error {
	min := len(l.Params)
	if l.Rest == nil {
		if n != min {
			return ArityError{Name: l.procName(), Got: n, Min: min, Max: min}
		}
		return nil
	}
	if n < min {
		return ArityError{Name: l.procName(), Got: n, Min: min, Max: -1}
	}
	return nil
}

func (l *Lambda) procName() string {
	if l.Name == "" {
		return "lambda"
	}
	return l.Name
}

// Macro is registered by `defmacro`: calling it binds its parameters to
// the unevaluated argument forms, evaluates the body to produce a new
// form, which is then evaluated again in the caller's environment. Macros
// are unhygienic: symbols the body template inserts are resolved in the
// caller's environment, not the macro's definition environment.
type Macro struct {
	Name   string
	Params []*sx.Symbol
	Rest   *sx.Symbol
	Body   *sx.Pair
	Env    *sxenv.Frame
}

func (m *Macro) String() string { return fmt.Sprintf("#<macro %s>", m.Name) }
func (*Macro) IsAtom() bool     { return true }
func (m *Macro) IsEqv(o sx.Object) bool {
	om, ok := o.(*Macro)
	return ok && m == om
}

// CheckArity validates the number of unevaluated argument forms.
func (m *Macro) CheckArity(n int) error {
	min := len(m.Params)
	if m.Rest == nil {
		if n != min {
			return ArityError{Name: m.Name, Got: n, Min: min, Max: min}
		}
		return nil
	}
	if n < min {
		return ArityError{Name: m.Name, Got: n, Min: min, Max: -1}
	}
	return nil
}

// IsProcedure reports whether obj is any of the four procedure kinds.
func IsProcedure(obj sx.Object) bool {
	switch obj.(type) {
	case *Builtin, *Primitive, *Lambda, *Macro:
		return true
	}
	return false
}
