package sx

import (
	"strconv"
)

// Number is the common interface of the two members of the numeric tower:
// Integer and Float. Mixed-type arithmetic promotes to Float.
type Number interface {
	Object
	IsZero() bool
	Float64() float64
}

// Integer is a signed, 64-bit exact number.
type Integer int64

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

func (Integer) IsAtom() bool { return true }

func (i Integer) IsEqv(other Object) bool {
	oi, ok := other.(Integer)
	return ok && i == oi
}

func (i Integer) IsZero() bool      { return i == 0 }
func (i Integer) Float64() float64  { return float64(i) }

// Float is an inexact, IEEE-754 double precision number.
type Float float64

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (Float) IsAtom() bool { return true }

func (f Float) IsEqv(other Object) bool {
	of, ok := other.(Float)
	return ok && f == of
}

func (f Float) IsZero() bool     { return f == 0 }
func (f Float) Float64() float64 { return float64(f) }

// GetNumber returns obj as a Number, if possible.
func GetNumber(obj Object) (Number, bool) {
	switch v := obj.(type) {
	case Integer:
		return v, true
	case Float:
		return v, true
	}
	return nil, false
}

// NumEqual reports numeric equality across the Integer/Float boundary,
// as used by the `=` built-in.
func NumEqual(x, y Number) bool {
	xi, xIsInt := x.(Integer)
	yi, yIsInt := y.(Integer)
	if xIsInt && yIsInt {
		return xi == yi
	}
	return x.Float64() == y.Float64()
}

// NumLess reports x < y, promoting to float when either operand is inexact.
func NumLess(x, y Number) bool {
	xi, xIsInt := x.(Integer)
	yi, yIsInt := y.(Integer)
	if xIsInt && yIsInt {
		return xi < yi
	}
	return x.Float64() < y.Float64()
}
