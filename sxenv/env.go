package sxenv

import (
	"fmt"

	"gscheme.dev/gscheme/sx"
)

// Frame is one level of the lexical environment: a mutable mapping from
// symbols to values, with an optional link to the enclosing frame. A
// closure stores the *Frame that was active when it was created; looking
// up a free variable walks outward through that chain.
type Frame struct {
	parent *Frame
	vars   map[*sx.Symbol]sx.Object
}

// NewRoot creates the top-level frame, with no parent.
func NewRoot() *Frame {
	return &Frame{vars: make(map[*sx.Symbol]sx.Object, 256)}
}

// Extend pushes a new, initially empty frame whose parent is f.
func (f *Frame) Extend() *Frame {
	return &Frame{parent: f, vars: make(map[*sx.Symbol]sx.Object, 8)}
}

// Parent returns the enclosing frame, or nil for the root frame.
func (f *Frame) Parent() *Frame { return f.parent }

// UndefinedVariableError reports lookup or assignment of an unbound symbol.
type UndefinedVariableError struct{ Sym *sx.Symbol }

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("Error: %s is not defined", e.Sym.Name())
}

// RedefinedVariableError reports `define` of a symbol already bound in the
// same frame.
type RedefinedVariableError struct{ Sym *sx.Symbol }

func (e RedefinedVariableError) Error() string {
	return fmt.Sprintf("Error: %s is already defined", e.Sym.Name())
}

// Lookup walks outward from f looking for a binding of sym.
func (f *Frame) Lookup(sym *sx.Symbol) (sx.Object, error) {
	for frame := f; frame != nil; frame = frame.parent {
		if val, found := frame.vars[sym]; found {
			return val, nil
		}
	}
	return nil, UndefinedVariableError{Sym: sym}
}

// Define binds sym to val in f itself. It is an error to redefine a symbol
// already present in this exact frame (shadowing an outer binding is fine).
func (f *Frame) Define(sym *sx.Symbol, val sx.Object) error {
	if _, found := f.vars[sym]; found {
		return RedefinedVariableError{Sym: sym}
	}
	f.vars[sym] = val
	return nil
}

// DefineOrReplace is like Define but silently overwrites an existing
// binding in f. Used to install built-ins in the root frame, to bind
// procedure and macro parameters, and by `define` in nested frames and
// `defmacro`.
func (f *Frame) DefineOrReplace(sym *sx.Symbol, val sx.Object) {
	f.vars[sym] = val
}

// Assign mutates the innermost frame that already binds sym.
func (f *Frame) Assign(sym *sx.Symbol, val sx.Object) error {
	for frame := f; frame != nil; frame = frame.parent {
		if _, found := frame.vars[sym]; found {
			frame.vars[sym] = val
			return nil
		}
	}
	return UndefinedVariableError{Sym: sym}
}

// LocalLookup looks up sym only in f, without consulting parents.
func (f *Frame) LocalLookup(sym *sx.Symbol) (sx.Object, bool) {
	val, found := f.vars[sym]
	return val, found
}
