/*
Package json implements a JSON grammar (RFC 8259) on text.

Values are represented the way package encoding/json decodes into an empty
interface:

    object  →  map[string]interface{}
    array   →  []interface{}
    string  →  string
    number  →  float64
    true    →  true
    false   →  false
    null    →  nil

JSON is unambiguous, so Parse expects exactly one complete interpretation.
The grammar is a showcase for recursive grammars built from pcomb.Ref,
separated repetition and dictionary matching.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package json

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.grammars'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.grammars")
}
