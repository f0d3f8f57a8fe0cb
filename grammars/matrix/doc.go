/*
Package matrix implements a grammar for matrix literals in the notation of
numeric computing environments:

    [1.5, 2, 3;
     4, 5, 6.25]

Columns are separated by commas, rows by semicolons. Numbers are read
eagerly in American English notation. Matrices with rows of different
lengths are rejected.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package matrix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.grammars'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.grammars")
}
