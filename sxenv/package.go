// Package sxenv implements the lexical environment: a chain of frames
// mapping symbols to values, supporting lookup, mutation and extension for
// procedure calls. Closures capture a reference to the frame that was
// current when the closure was created.
package sxenv
