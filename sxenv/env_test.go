package sxenv_test

import (
	"testing"

	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxenv"
)

func TestDefineAndLookup(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	if err := root.Define(sym, sx.Integer(1)); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	val, err := root.Lookup(sym)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if val != sx.Integer(1) {
		t.Errorf("Lookup = %v, want 1", val)
	}
}

func TestDefineDuplicateInSameFrameFails(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	_ = root.Define(sym, sx.Integer(1))
	err := root.Define(sym, sx.Integer(2))
	if _, ok := err.(sxenv.RedefinedVariableError); !ok {
		t.Errorf("redefining in the same frame must return RedefinedVariableError, got %v", err)
	}
}

func TestLookupUnboundFails(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	_, err := root.Lookup(sx.Intern("undefined"))
	if _, ok := err.(sxenv.UndefinedVariableError); !ok {
		t.Errorf("looking up an unbound symbol must return UndefinedVariableError, got %v", err)
	}
}

func TestLookupWalksOuterFrames(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	_ = root.Define(sym, sx.Integer(42))

	child := root.Extend()
	val, err := child.Lookup(sym)
	if err != nil {
		t.Fatalf("Lookup from child frame failed: %v", err)
	}
	if val != sx.Integer(42) {
		t.Errorf("Lookup = %v, want 42", val)
	}
}

func TestShadowingInnerFrame(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	_ = root.Define(sym, sx.Integer(1))

	child := root.Extend()
	_ = child.Define(sym, sx.Integer(2))

	val, _ := child.Lookup(sym)
	if val != sx.Integer(2) {
		t.Errorf("child lookup = %v, want 2 (shadowed)", val)
	}
	val, _ = root.Lookup(sym)
	if val != sx.Integer(1) {
		t.Errorf("root lookup = %v, want 1 (unaffected by shadowing)", val)
	}
}

func TestAssignMutatesInnermostBindingFrame(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	_ = root.Define(sym, sx.Integer(1))

	child := root.Extend()
	if err := child.Assign(sym, sx.Integer(99)); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	val, _ := root.Lookup(sym)
	if val != sx.Integer(99) {
		t.Errorf("root lookup after Assign from child = %v, want 99", val)
	}
}

func TestAssignUnboundFails(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	err := root.Assign(sx.Intern("nope"), sx.Integer(1))
	if _, ok := err.(sxenv.UndefinedVariableError); !ok {
		t.Errorf("Assign of an unbound symbol must return UndefinedVariableError, got %v", err)
	}
}

func TestLocalLookupDoesNotWalkParents(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	_ = root.Define(sym, sx.Integer(1))
	child := root.Extend()

	if _, found := child.LocalLookup(sym); found {
		t.Error("LocalLookup must not see a binding in the parent frame")
	}
	if _, found := root.LocalLookup(sym); !found {
		t.Error("LocalLookup must see a binding in its own frame")
	}
}

func TestDefineOrReplace(t *testing.T) {
	t.Parallel()

	root := sxenv.NewRoot()
	sym := sx.Intern("x")
	root.DefineOrReplace(sym, sx.Integer(1))
	root.DefineOrReplace(sym, sx.Integer(2))
	val, _ := root.Lookup(sym)
	if val != sx.Integer(2) {
		t.Errorf("DefineOrReplace must silently overwrite, got %v, want 2", val)
	}
}
