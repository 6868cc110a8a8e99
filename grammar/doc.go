/*
Package grammar turns the source text of line-numbered BASIC programs into
parse trees.

Parsing happens in three steps:

(1) Lex splits the input into untyped token strings. It is a small state
machine with four states (start, number, identifier, string) and one
character of implicit lookahead. A newline is an ordinary token.

(2) Parse assigns a kind to every token and groups the resulting leaf nodes
into lines. Every line is folded as soon as it is complete.

(3) Fold rewrites the flat children of a line in place. It repeatedly
replaces 3-node windows like

   ⟨operand⟩ * ⟨operand⟩      ( ⟨operand⟩ )

with a single Expression node owning those three nodes, until a full round
changes nothing. Rounds fold `*` and `/` first, then `+` and `-`, then `^`,
then parentheses. Operator binding therefore follows the order of the rounds
and not classical precedence: `2 ^ 3 + 1` groups as `2 ^ (3 + 1)`.

Malformed input is not an error for this package. Tokens which cannot be
folded simply stay flat and it is up to the statement executing the line to
complain.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lpi.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lpi.grammar")
}
