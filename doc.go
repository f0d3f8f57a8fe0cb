/*
Package pcomb is a toolbox of ambiguity-preserving parser combinators.

A parser in pcomb does not produce a single result. Given an input tape it
produces the set of all valid interpretations, each being a value together with
the unconsumed rest of the input. An empty result set means failure; more than
one interpretation means the input is ambiguous with respect to the grammar.
Clients decide how to disambiguate, e.g. by dropping incomplete parses and
duplicates:

    rs := pcomb.ParseString(expr, "(14+7)*2").RemoveIncomplete().RemoveDuplicates()
    if rs.IsSuccess() {
        fmt.Println(rs[0].Value)
    }

Package structure is as follows:

■ pcomb: tapes, result sets, the core algebra (Map, FlatMap, Or, OrElse, …),
sequencing (Seq2…Seq6), repetition (ZeroOrMore, OneOrMore, Repeat) and grammar
rules, including recursive ones.

■ match: primitive matchers for literals, predicates, regular expressions and
dictionaries.

■ eager: deterministic longest-prefix matching driven by conversion strategies,
e.g. for numbers.

■ scanner: tokenizers producing token tapes, so the same combinators may be
used on token streams.

■ grammars: example grammars (arithmetic, postal addresses, JSON, matrices).

Ambiguity is handled by brute-force branching. There is no sharing of
sub-results between branches, and left-recursive rules will not terminate.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcomb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.core'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.core")
}
