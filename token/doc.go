// Package token provides the character-level machinery under the ADF
// decoder: a cursor tracking offset/line/column, positions with context
// snippets for diagnostics, and readers for the quoted-string, number
// and identifier literals. ADF's metadata sub-grammars hinge on
// one-character lookahead around '/', so the decoder works on a raw
// cursor rather than a token stream.
package token
