package sx

import (
	"fmt"
	"io"
)

// Object is the generic value every Scheme datum must implement. The same
// representation is used for source syntax (as produced by the reader) and
// for runtime values (as produced by the evaluator): a pair of symbols read
// from source is the very same kind of value as a pair built by `cons`.
type Object interface {
	fmt.Stringer

	// IsAtom reports whether the object is not further decomposable, i.e.
	// not a pair and not a vector.
	IsAtom() bool

	// IsEqv implements the `eqv?`/`eq?` equivalence: atoms compare by type
	// and value, pairs and vectors compare by identity.
	IsEqv(Object) bool
}

// Printable is an object whose external representation is cheaper to stream
// than to build as a string first.
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes the canonical external representation of obj to w.
func Print(w io.Writer, obj Object) (int, error) {
	if obj == nil {
		return io.WriteString(w, "()")
	}
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, obj.String())
}

// IsNil reports whether obj is the empty list. Unlike Go's nil, the empty
// list is a distinct, well-typed value: a *Pair with no cells.
func IsNil(obj Object) bool {
	if obj == nil {
		return true
	}
	p, ok := obj.(*Pair)
	return ok && p == nil
}
