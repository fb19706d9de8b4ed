package sxbuiltins

import "gscheme.dev/gscheme/sxeval"

// BindAll installs every built-in procedure and special form required by
// the specification, then loads the standard-library prelude on top of
// them. Call it once, right after creating the Evaluator.
func BindAll(ev *sxeval.Evaluator) error {
	sxeval.RegisterSpecialForms(ev)
	registerPairs(ev)
	registerNumbers(ev)
	registerEquivalence(ev)
	registerCharacters(ev)
	registerStrings(ev)
	registerVectors(ev)
	registerIO(ev)
	registerTypePredicates(ev)
	return LoadPrelude(ev)
}
