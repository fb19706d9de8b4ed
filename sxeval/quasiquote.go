package sxeval

import (
	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxenv"
)

// quasiquote implements the templating rules of §4.7: atoms and Nil are
// returned as-is; `(unquote x)` evaluates x; a list containing
// `(unquote-splicing x)` splices the evaluated (proper) list x in at that
// position; everything else is rebuilt element-wise. Nested quasiquote is
// treated as an ordinary form for splicing purposes - a documented
// limitation, not a bug: see the design notes.
func (ev *Evaluator) quasiquote(tmpl sx.Object, frame *sxenv.Frame) (sx.Object, error) {
	pair, isPair := tmpl.(*sx.Pair)
	if !isPair || pair == nil {
		return tmpl, nil
	}

	if sym, ok := sx.GetSymbol(pair.Car()); ok {
		if sym == sx.SymUnquote {
			arg := pair.Tail()
			if arg == nil {
				return nil, SyntaxError{Msg: "unquote requires exactly one expression"}
			}
			return ev.Eval(arg.Car(), frame)
		}
	}

	var lb sx.ListBuilder
	for node := pair; node != nil; {
		elem := node.Car()

		if elemPair, ok := elem.(*sx.Pair); ok && elemPair != nil {
			if sym, ok := sx.GetSymbol(elemPair.Car()); ok && sym == sx.SymUnquoteSplicing {
				argForm := elemPair.Tail()
				if argForm == nil {
					return nil, SyntaxError{Msg: "unquote-splicing requires exactly one expression"}
				}
				spliced, err := ev.Eval(argForm.Car(), frame)
				if err != nil {
					return nil, err
				}
				splicedPair, ok := spliced.(*sx.Pair)
				if !ok {
					return nil, TypeError{Msg: "unquote-splicing requires a list result"}
				}
				for v := range splicedPair.Values() {
					lb.Add(v)
				}
				node = node.Tail()
				continue
			}
		}

		val, err := ev.quasiquote(elem, frame)
		if err != nil {
			return nil, err
		}
		lb.Add(val)

		switch cdr := node.Cdr().(type) {
		case *sx.Pair:
			node = cdr
		default:
			if !sx.IsNil(cdr) {
				// Improper tail: quasiquote it too and attach it directly.
				tailVal, err := ev.quasiquote(cdr, frame)
				if err != nil {
					return nil, err
				}
				last := lb.List()
				if last == nil {
					return tailVal, nil
				}
				lastPair := last
				for lastPair.Tail() != nil {
					lastPair = lastPair.Tail()
				}
				lastPair.SetCdr(tailVal)
			}
			node = nil
		}
	}
	return lb.List(), nil
}
