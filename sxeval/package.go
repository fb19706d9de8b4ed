// Package sxeval implements the tree-walking evaluator: dispatch between
// special forms, macros, built-in procedures and user-defined procedures,
// tail-call-free recursive evaluation of applications, and the support
// machinery (quasiquote expansion, arity and type checking, error kinds)
// that the built-in registry in sxbuiltins is built on top of.
package sxeval
