/*
Package arith implements a small grammar for arithmetic expressions on
unsigned integers:

    Sum     = Product '+' Sum
            | Product
    Product = Factor '*' Product
            | Factor
    Factor  = '(' Sum ')'
            | number

Alternatives are combined with pcomb.Or, i.e. the grammar produces every
interpretation it can find, including incomplete ones. Eval and EvalTokens
select the complete interpretations and check for uniqueness.

The grammar is written once and instantiated for two kinds of tapes: text,
and tokens produced by a lexmachine scanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arith

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.grammars'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.grammars")
}
