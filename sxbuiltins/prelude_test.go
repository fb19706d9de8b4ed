package sxbuiltins_test

import (
	"testing"

	"gscheme.dev/gscheme/sx"
)

func TestLet(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	if got := run(t, ev, "(let ((x 1) (y 2)) (+ x y))"); got != sx.Integer(3) {
		t.Errorf("(let ((x 1) (y 2)) (+ x y)) = %v, want 3", got)
	}
}

func TestCond(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	got := run(t, ev, `(cond ((= 1 2) 'no) ((= 1 1) 'yes) (else 'fallback))`)
	if got != sx.Object(sx.Intern("yes")) {
		t.Errorf("cond = %v, want yes", got)
	}

	got = run(t, ev, `(cond ((= 1 2) 'no) (else 'fallback))`)
	if got != sx.Object(sx.Intern("fallback")) {
		t.Errorf("cond else = %v, want fallback", got)
	}
}

func TestAndOr(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	if got := run(t, ev, "(and 1 2 3)"); got != sx.Integer(3) {
		t.Errorf("(and 1 2 3) = %v, want 3", got)
	}
	if got := run(t, ev, "(and 1 #f 3)"); got != sx.False {
		t.Errorf("(and 1 #f 3) = %v, want #f", got)
	}
	if got := run(t, ev, "(or #f #f 5)"); got != sx.Integer(5) {
		t.Errorf("(or #f #f 5) = %v, want 5", got)
	}
	if got := run(t, ev, "(or #f #f)"); got != sx.False {
		t.Errorf("(or #f #f) = %v, want #f", got)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	got := run(t, ev, `
		(define calls '())
		(define (note x v) (set! calls (cons x calls)) v)
		(and (note 'a #f) (note 'b #t))
		calls
	`)
	if got.String() != "(a)" {
		t.Errorf("and must not evaluate past the first false clause, calls = %v", got)
	}
}

func TestNot(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	if got := run(t, ev, "(not #f)"); got != sx.True {
		t.Errorf("(not #f) = %v, want #t", got)
	}
	if got := run(t, ev, "(not 1)"); got != sx.False {
		t.Errorf("(not 1) = %v, want #f", got)
	}
}

func TestNumericPredicateHelpers(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	cases := map[string]sx.Object{
		"(zero? 0)":      sx.True,
		"(zero? 1)":      sx.False,
		"(positive? 1)":  sx.True,
		"(positive? -1)": sx.False,
		"(negative? -1)": sx.True,
		"(odd? 3)":       sx.True,
		"(even? 4)":      sx.True,
		"(abs -5)":       sx.Integer(5),
		"(abs 5)":        sx.Integer(5),
	}
	for src, want := range cases {
		if got := run(t, ev, src); got != want {
			t.Errorf("%s = %v, want %v", src, got, want)
		}
	}
}

func TestBooleanPredicate(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	if got := run(t, ev, "(boolean? #t)"); got != sx.True {
		t.Errorf("(boolean? #t) = %v, want #t", got)
	}
	if got := run(t, ev, "(boolean? 1)"); got != sx.False {
		t.Errorf("(boolean? 1) = %v, want #f", got)
	}
}

func TestMapAndForEach(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	got := run(t, ev, "(map (lambda (x) (* x x)) (list 1 2 3))")
	if got.String() != "(1 4 9)" {
		t.Errorf("map = %v, want (1 4 9)", got)
	}

	got = run(t, ev, `
		(define total 0)
		(for-each (lambda (x) (set! total (+ total x))) (list 1 2 3))
		total
	`)
	if got != sx.Integer(6) {
		t.Errorf("for-each accumulation = %v, want 6", got)
	}
}

func TestVectorListConversions(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	if got := run(t, ev, "(vector 1 2 3)"); got.String() != "#(1 2 3)" {
		t.Errorf("(vector 1 2 3) = %v, want #(1 2 3)", got)
	}
	if got := run(t, ev, "(vector->list (vector 1 2 3))"); got.String() != "(1 2 3)" {
		t.Errorf("vector->list = %v, want (1 2 3)", got)
	}
	if got := run(t, ev, "(list->vector (list 1 2 3))"); got.String() != "#(1 2 3)" {
		t.Errorf("list->vector = %v, want #(1 2 3)", got)
	}
}

func TestVectorFillPrelude(t *testing.T) {
	t.Parallel()
	ev, _ := newEvaluator(t)

	got := run(t, ev, "(let ((v (make-vector 3 0))) (vector-fill! v 7) v)")
	if got.String() != "#(7 7 7)" {
		t.Errorf("vector-fill! = %v, want #(7 7 7)", got)
	}
}
