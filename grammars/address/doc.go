/*
Package address implements a grammar for German postal addresses, in a
simplified form:

    Address = Person Street City
    Person  = [ title ] firstname lastname EOL
    Street  = streetname number EOL
    City    = zipcode ' ' cityname EOL

Names are words without whitespace. Blanks and tabs after a word are
skipped, line ends are not.

The grammar is ambiguous by construction: a missing title is an
alternative to every line which starts with three words. Parse returns all
interpretations; it is up to the client to select complete ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package address

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.grammars'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.grammars")
}
