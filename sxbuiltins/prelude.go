package sxbuiltins

import (
	_ "embed"

	"gscheme.dev/gscheme/sxeval"
)

//go:embed prelude.sxn
var preludeSource string

// LoadPrelude evaluates the embedded standard-library source in the
// global frame, installing let, cond, and, or, not, the numeric and
// boolean predicates, map, for-each, and the vector conversion procedures
// on top of the built-in registry.
func LoadPrelude(ev *sxeval.Evaluator) error {
	_, err := ev.EvalProgram(preludeSource, ev.Global)
	return err
}
