/*
Command pcomb is a command line tool to run the example grammars of package
pcomb on user input. It prints every interpretation a grammar finds,
together with the input it left unconsumed. This makes it a sandbox for
experiments with ambiguous grammars.

    pcomb parse -g arith "1+2*3"
    pcomb parse -g json --complete < data.json
    pcomb repl -g matrix

Available grammars are arith, arith-tokens, json, matrix and address.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.cli'
func tracer() tracing.Trace {
	return tracing.Select("pcomb.cli")
}
