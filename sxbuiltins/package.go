// Package sxbuiltins is the fixed, read-only table of built-in procedures:
// arithmetic, pair/list operations, characters, strings, vectors,
// equivalence, I/O and type predicates, plus the Scheme-source prelude
// (let, cond, and, or, map, ...) built on top of them with define and
// defmacro.
package sxbuiltins
