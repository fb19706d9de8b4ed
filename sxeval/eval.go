package sxeval

import (
	"io"
	"os"

	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxenv"
	"gscheme.dev/gscheme/sxreader"
)

// maxDepth bounds recursive evaluation. Go has no way to catch a genuine
// stack overflow (it is a fatal, unrecoverable runtime error, not a
// panic), so deep recursion is detected by counting nested Eval calls
// instead of pattern-matching a host-specific message.
const maxDepth = 10000

// Evaluator owns the primitive table, the global (builtins + top-level)
// frame, and the output sink used by `display`/`newline`. There is exactly
// one Evaluator per running program or REPL session; it is not re-entrant.
type Evaluator struct {
	primitives map[*sx.Symbol]*Primitive
	builtins   *sxenv.Frame // root frame: holds only built-in procedures
	Global     *sxenv.Frame // child of builtins: top-level user bindings
	Out        io.Writer
	depth      int
}

// NewEvaluator creates an Evaluator with an empty builtins/global frame
// pair and os.Stdout as the default output sink.
func NewEvaluator() *Evaluator {
	builtins := sxenv.NewRoot()
	return &Evaluator{
		primitives: make(map[*sx.Symbol]*Primitive),
		builtins:   builtins,
		Global:     builtins.Extend(),
		Out:        os.Stdout,
	}
}

// DefinePrimitive registers a special form. Primitives take precedence
// over both user bindings and built-ins and can never be shadowed: this
// is what keeps `if`, `define`, `lambda` and friends from being redefined.
func (ev *Evaluator) DefinePrimitive(p *Primitive) {
	ev.primitives[sx.Intern(p.Name)] = p
}

// DefineBuiltin installs a built-in procedure into the builtins frame,
// i.e. the outermost ancestor of every other frame.
func (ev *Evaluator) DefineBuiltin(b *Builtin) {
	ev.builtins.DefineOrReplace(sx.Intern(b.Name), b)
}

// Builtins returns the frame built-ins live in, for code (e.g. the
// top-level shadowing check of `define`) that must distinguish it from
// Global.
func (ev *Evaluator) Builtins() *sxenv.Frame { return ev.builtins }

// EvalProgram reads every top-level form from text and evaluates them in
// order in frame, returning the value of the last one (or Nil if text
// contains no forms).
func (ev *Evaluator) EvalProgram(text string, frame *sxenv.Frame) (sx.Object, error) {
	rd := sxreader.NewReader(text)
	var result sx.Object = sx.Nil()
	for {
		form, err := rd.Read()
		if err != nil {
			if err == io.EOF {
				return result, nil
			}
			return nil, err
		}
		result, err = ev.Eval(form, frame)
		if err != nil {
			return nil, err
		}
	}
}

// Eval evaluates a single form in frame. Atoms other than symbols
// self-evaluate; a symbol is looked up; a pair is a special form
// invocation, a macro expansion, or a procedure application.
func (ev *Evaluator) Eval(form sx.Object, frame *sxenv.Frame) (sx.Object, error) {
	ev.depth++
	if ev.depth > maxDepth {
		ev.depth--
		return nil, StackOverflowError{}
	}
	defer func() { ev.depth-- }()

	switch v := form.(type) {
	case *sx.Symbol:
		return frame.Lookup(v)
	case *sx.Pair:
		return ev.evalPair(v, frame)
	default:
		// Integer, Float, Boolean, Character, *sx.String, *sx.Vector,
		// procedures, and nil all self-evaluate.
		return form, nil
	}
}

func (ev *Evaluator) evalPair(form *sx.Pair, frame *sxenv.Frame) (sx.Object, error) {
	if form == nil {
		return nil, SyntaxError{Msg: "() is not a valid expression"}
	}

	opSym, isSymbol := sx.GetSymbol(form.Car())
	if isSymbol {
		if prim, found := ev.primitives[opSym]; found {
			args, _ := form.Cdr().(*sx.Pair)
			return prim.Fn(ev, args, frame)
		}
	}

	opVal, err := ev.Eval(form.Car(), frame)
	if err != nil {
		return nil, err
	}

	if macro, ok := opVal.(*Macro); ok {
		argForms, _ := form.Cdr().(*sx.Pair)
		expansion, err := ev.expandMacro(macro, argForms)
		if err != nil {
			return nil, err
		}
		return ev.Eval(expansion, frame)
	}

	if !IsProcedure(opVal) {
		return nil, TypeError{Msg: "cannot apply a non-procedure: " + opVal.String()}
	}

	argForms, isProperArgs := form.Cdr().(*sx.Pair)
	if !isProperArgs && !sx.IsNil(form.Cdr()) {
		return nil, SyntaxError{Msg: "improper argument list"}
	}
	args, err := ev.evalArgs(argForms, frame)
	if err != nil {
		return nil, err
	}
	return ev.Apply(opVal, args)
}

// evalArgs evaluates each element of a proper argument-form list, strictly
// left to right.
func (ev *Evaluator) evalArgs(forms *sx.Pair, frame *sxenv.Frame) ([]sx.Object, error) {
	var args []sx.Object
	for node := forms; node != nil; node = node.Tail() {
		v, err := ev.Eval(node.Car(), frame)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// Apply invokes a Builtin or Lambda with already-evaluated arguments.
func (ev *Evaluator) Apply(proc sx.Object, args []sx.Object) (sx.Object, error) {
	switch p := proc.(type) {
	case *Builtin:
		if err := p.CheckArity(len(args)); err != nil {
			return nil, err
		}
		return p.Fn(ev, args)
	case *Lambda:
		return ev.applyLambda(p, args)
	default:
		return nil, TypeError{Msg: "cannot apply a non-procedure: " + proc.String()}
	}
}

func (ev *Evaluator) applyLambda(l *Lambda, args []sx.Object) (sx.Object, error) {
	if err := l.CheckArity(len(args)); err != nil {
		return nil, err
	}
	callFrame := l.Env.Extend()
	for i, p := range l.Params {
		callFrame.DefineOrReplace(p, args[i])
	}
	if l.Rest != nil {
		var lb sx.ListBuilder
		for _, v := range args[len(l.Params):] {
			lb.Add(v)
		}
		callFrame.DefineOrReplace(l.Rest, lb.List())
	}
	var result sx.Object = sx.Nil()
	var err error
	for node := l.Body; node != nil; node = node.Tail() {
		result, err = ev.Eval(node.Car(), callFrame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// expandMacro binds a macro's parameters to the unevaluated argument
// forms in a fresh frame extending the macro's definition environment,
// then evaluates the body to produce the expansion.
func (ev *Evaluator) expandMacro(m *Macro, argForms *sx.Pair) (sx.Object, error) {
	forms := sx.ToSlice(argForms)
	if err := m.CheckArity(len(forms)); err != nil {
		return nil, err
	}
	expandFrame := m.Env.Extend()
	for i, p := range m.Params {
		expandFrame.DefineOrReplace(p, forms[i])
	}
	if m.Rest != nil {
		var lb sx.ListBuilder
		for _, v := range forms[len(m.Params):] {
			lb.Add(v)
		}
		expandFrame.DefineOrReplace(m.Rest, lb.List())
	}
	var result sx.Object = sx.Nil()
	var err error
	for node := m.Body; node != nil; node = node.Tail() {
		result, err = ev.Eval(node.Car(), expandFrame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
