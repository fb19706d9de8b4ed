package sx_test

import (
	"testing"

	"gscheme.dev/gscheme/sx"
)

func TestNilIsDistinctTypedValue(t *testing.T) {
	t.Parallel()

	if sx.Nil() != nil {
		t.Error("Nil() must be the typed nil *Pair")
	}
	if !sx.IsNil(sx.Nil()) {
		t.Error("IsNil(Nil()) must be true")
	}
	if sx.IsNil(sx.Cons(sx.Integer(1), sx.Nil())) {
		t.Error("a non-empty pair must not be IsNil")
	}
}

func TestConsCarCdr(t *testing.T) {
	t.Parallel()

	p := sx.Cons(sx.Integer(1), sx.Integer(2))
	if p.Car() != sx.Integer(1) {
		t.Errorf("Car() = %v, want 1", p.Car())
	}
	if p.Cdr() != sx.Integer(2) {
		t.Errorf("Cdr() = %v, want 2", p.Cdr())
	}
}

func TestSetCarSetCdr(t *testing.T) {
	t.Parallel()

	p := sx.Cons(sx.Integer(1), sx.Nil())
	p.SetCar(sx.Integer(9))
	p.SetCdr(sx.Integer(10))
	if p.Car() != sx.Integer(9) || p.Cdr() != sx.Integer(10) {
		t.Error("SetCar/SetCdr must mutate in place")
	}
}

func TestMakeListAndPrint(t *testing.T) {
	t.Parallel()

	lst := sx.MakeList(sx.Integer(1), sx.Integer(2), sx.Integer(3))
	if got, want := lst.String(), "(1 2 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestImproperListPrint(t *testing.T) {
	t.Parallel()

	p := sx.Cons(sx.Integer(1), sx.Cons(sx.Integer(2), sx.Integer(3)))
	if got, want := p.String(), "(1 2 . 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIsList(t *testing.T) {
	t.Parallel()

	if !sx.IsList(sx.MakeList(sx.Integer(1), sx.Integer(2))) {
		t.Error("a proper list must satisfy IsList")
	}
	if sx.IsList(sx.Cons(sx.Integer(1), sx.Integer(2))) {
		t.Error("an improper list must not satisfy IsList")
	}
	if !sx.IsList(sx.Nil()) {
		t.Error("Nil must satisfy IsList")
	}
}

func TestCircularListDetection(t *testing.T) {
	t.Parallel()

	p := sx.Cons(sx.Integer(1), sx.Nil())
	p.SetCdr(p)

	if !p.IsCircular() {
		t.Error("a self-referential pair must be detected as circular")
	}
	if sx.IsList(p) {
		t.Error("a circular chain must not satisfy IsList")
	}
	if _, err := p.Length(); err != sx.ErrCircularList {
		t.Errorf("Length() on a circular list must return ErrCircularList, got %v", err)
	}
	if got, want := p.String(), "#<circular list>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLength(t *testing.T) {
	t.Parallel()

	n, err := sx.MakeList(sx.Integer(1), sx.Integer(2), sx.Integer(3)).Length()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("Length() = %d, want 3", n)
	}
}

func TestToSlice(t *testing.T) {
	t.Parallel()

	lst := sx.MakeList(sx.Integer(1), sx.Integer(2))
	got := sx.ToSlice(lst)
	if len(got) != 2 || got[0] != sx.Integer(1) || got[1] != sx.Integer(2) {
		t.Errorf("ToSlice() = %v, want [1 2]", got)
	}
}

func TestListBuilder(t *testing.T) {
	t.Parallel()

	var lb sx.ListBuilder
	lb.AddN(sx.Integer(1), sx.Integer(2), sx.Integer(3))
	if got, want := lb.List().String(), "(1 2 3)"; got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}
