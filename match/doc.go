/*
Package match provides primitive parsers, i.e. the leaves of a grammar.

Matchers in this package consume a prefix of their input and produce at most
one interpretation each. Ambiguity arises only when matchers are combined
with the combinators of package pcomb.

■ Exactly and Literal match a fixed prefix of text or of a generic sequence.

■ While, One, Runes and StringParser match by predicate.

■ Regex matches a prefix against a regular expression.

■ Words maps a dictionary of literals to values; the first literal in
declaration order which is a prefix of the input wins.

■ Token and TokenLexeme match single tokens of a token tape.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.match'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.match")
}
