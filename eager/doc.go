/*
Package eager implements deterministic longest-prefix matching.

A MaxParser hands growing prefixes of its input to a conversion Strategy,
starting with the first element, then the first two elements and so on. It
stops at the first prefix the strategy rejects and produces a single
interpretation from the longest accepted prefix. This is fast and good
enough for most literals, but it relies on a property of the strategy:

    If a prefix is rejected, every longer prefix is rejected as well.

Decimal numbers mostly have this property, but not always. "-5" will not be
recognized by a plain integer strategy, as "-" on its own is not an integer.
The strategies of this package accept such incomplete intermediate forms
("-", "+", "1e", "1e-", ".") whenever a longer prefix could become valid, and
reject them as final values. Clients writing their own strategies have to
take care of this themselves.

Strategies shipped with this package convert text to int64, uint64 and
float64, the latter optionally with a locale-specific decimal separator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eager

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.eager'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.eager")
}
