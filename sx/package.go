// Package sx provides the value model shared by the reader, the evaluator
// and the built-in registry: the tagged union of Scheme values (symbols,
// numbers, booleans, characters, strings, pairs, the empty list, vectors
// and procedures) together with their canonical external representation.
package sx
