package sx

// Boolean is the #t / #f value. It is the only falsy value: every other
// object, including the empty list, is truthy in an `if`.
type Boolean bool

// True and False are the two canonical Boolean instances.
const (
	True  Boolean = true
	False Boolean = false
)

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (Boolean) IsAtom() bool { return true }

func (b Boolean) IsEqv(other Object) bool {
	ob, ok := other.(Boolean)
	return ok && b == ob
}

// IsTruthy implements the exact truthiness rule from `if`: only the literal
// #f is false, everything else, including '() and 0, is true.
func IsTruthy(obj Object) bool {
	b, ok := obj.(Boolean)
	return !ok || bool(b)
}

// GetBoolean returns obj as a Boolean, if possible.
func GetBoolean(obj Object) (Boolean, bool) {
	b, ok := obj.(Boolean)
	return b, ok
}
