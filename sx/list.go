package sx

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// Pair is a cons cell: a car/cdr node. The empty list is the nil *Pair, so
// that Nil() is a distinct, well-typed zero value rather than an untyped
// Go nil hiding inside an interface.
type Pair struct {
	car Object
	cdr Object
}

// Nil returns the empty list.
func Nil() *Pair { return nil }

// Cons creates a new pair.
func Cons(car, cdr Object) *Pair { return &Pair{car: car, cdr: cdr} }

// MakeList builds a proper list from the given objects.
func MakeList(objs ...Object) *Pair {
	var lb ListBuilder
	lb.AddN(objs...)
	return lb.List()
}

func (p *Pair) IsAtom() bool { return p == nil }

// IsEqv compares pairs by identity; two freshly consed pairs with equal
// contents are not `eqv?`.
func (p *Pair) IsEqv(other Object) bool {
	if IsNil(p) {
		return IsNil(other)
	}
	op, ok := other.(*Pair)
	return ok && p == op
}

func (p *Pair) String() string {
	var sb strings.Builder
	_, _ = p.Print(&sb)
	return sb.String()
}

// Print renders the pair in canonical list notation, handling improper
// (dotted) tails and detecting cycles so that printing always terminates.
func (p *Pair) Print(w io.Writer) (int, error) {
	if p == nil {
		return io.WriteString(w, "()")
	}
	if p.IsCircular() {
		return io.WriteString(w, "#<circular list>")
	}
	total := 0
	n, err := io.WriteString(w, "(")
	total += n
	if err != nil {
		return total, err
	}
	for node := p; ; {
		if node != p {
			n, err = io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = Print(w, node.car)
		total += n
		if err != nil {
			return total, err
		}
		switch cdr := node.cdr.(type) {
		case *Pair:
			if cdr == nil {
				n, err = io.WriteString(w, ")")
				total += n
				return total, err
			}
			node = cdr
		default:
			n, err = io.WriteString(w, " . ")
			total += n
			if err != nil {
				return total, err
			}
			n, err = Print(w, node.cdr)
			total += n
			if err != nil {
				return total, err
			}
			n, err = io.WriteString(w, ")")
			total += n
			return total, err
		}
	}
}

// Car returns the first element, or Nil() of the empty list.
func (p *Pair) Car() Object {
	if p == nil {
		return Nil()
	}
	return p.car
}

// Cdr returns the rest of the list, or Nil() of the empty list.
func (p *Pair) Cdr() Object {
	if p == nil {
		return Nil()
	}
	return p.cdr
}

// SetCar mutates the car in place.
func (p *Pair) SetCar(obj Object) {
	if p != nil {
		p.car = obj
	}
}

// SetCdr mutates the cdr in place. This is how `set-cdr!` can introduce
// cycles into a list.
func (p *Pair) SetCdr(obj Object) {
	if p != nil {
		p.cdr = obj
	}
}

// Tail returns the cdr as a *Pair, or nil if the cdr is not a pair.
func (p *Pair) Tail() *Pair {
	if p == nil {
		return nil
	}
	t, _ := p.cdr.(*Pair)
	return t
}

// IsList reports whether obj is a proper list: a chain of pairs ending in
// Nil, with no improper tail and no cycle.
func IsList(obj Object) bool {
	pair, ok := obj.(*Pair)
	if !ok {
		return false
	}
	slow, fast := pair, pair
	for {
		if fast == nil {
			return true
		}
		fastCdr, ok := fast.cdr.(*Pair)
		if !ok {
			return false
		}
		fast = fastCdr
		if fast == nil {
			return true
		}
		fastCdr, ok = fast.cdr.(*Pair)
		if !ok {
			return false
		}
		fast = fastCdr
		slow = slow.Tail()
		if fast == slow {
			return false // cycle
		}
	}
}

// ErrCircularList is returned by operations such as `length` that cannot
// terminate on a cyclic list.
var ErrCircularList = errors.New("circular list")

// IsCircular reports whether the list starting at p contains a cycle,
// using Floyd's tortoise-and-hare algorithm so detection is O(n) and needs
// no auxiliary storage.
func (p *Pair) IsCircular() bool {
	slow, fast := p, p
	for {
		if fast == nil {
			return false
		}
		fast = fast.Tail()
		if fast == nil {
			return false
		}
		fast = fast.Tail()
		slow = slow.Tail()
		if fast == slow && fast != nil {
			return true
		}
	}
}

// Length returns the number of elements in the proper list. It returns
// ErrCircularList instead of looping forever when the list is cyclic, and
// a non-nil error (with the count of pairs seen) when the list is improper.
func (p *Pair) Length() (int, error) {
	if p.IsCircular() {
		return 0, ErrCircularList
	}
	n := 0
	for node := p; node != nil; node = node.Tail() {
		n++
		if !IsNil(node.cdr) {
			if _, ok := node.cdr.(*Pair); !ok {
				return n, errImproperList
			}
		}
	}
	return n, nil
}

var errImproperList = errors.New("improper list")

// Values iterates the elements of a (non-circular) proper or improper
// list's spine.
func (p *Pair) Values() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for node := p; node != nil; node = node.Tail() {
			if !yield(node.car) {
				return
			}
		}
	}
}

// ToSlice collects the elements of a proper list into a Go slice.
func ToSlice(p *Pair) []Object {
	var out []Object
	for v := range p.Values() {
		out = append(out, v)
	}
	return out
}

// ListBuilder assembles a proper list from front to back in O(1) per
// element, without reversing.
type ListBuilder struct {
	first, last *Pair
}

// Add appends a single object.
func (lb *ListBuilder) Add(obj Object) {
	elem := Cons(obj, Nil())
	if lb.first == nil {
		lb.first = elem
		lb.last = elem
		return
	}
	lb.last.cdr = elem
	lb.last = elem
}

// AddN appends multiple objects.
func (lb *ListBuilder) AddN(objs ...Object) {
	for _, obj := range objs {
		lb.Add(obj)
	}
}

// List returns the list built so far.
func (lb *ListBuilder) List() *Pair { return lb.first }
