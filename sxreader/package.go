// Package sxreader turns Scheme source text into sx.Object values: a
// lexer that produces a token stream, and a reader that performs a
// grammar-directed construction of S-expressions from that stream,
// including read-time reader-macro desugaring of `'`, `` ` ``, `,` and
// `,@`.
package sxreader
