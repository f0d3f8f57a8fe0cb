package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/grammars/address"
	"github.com/npillmayer/pcomb/grammars/arith"
	"github.com/npillmayer/pcomb/grammars/json"
	"github.com/npillmayer/pcomb/grammars/matrix"
)

// options control which interpretations are shown.
type options struct {
	complete bool // drop interpretations with remaining input
	dedup    bool // drop duplicate interpretations
}

// interpretation is a parse result prepared for display.
type interpretation struct {
	value string
	rest  string
}

type grammar struct {
	run func(input string, opts options) ([]interpretation, error)
	// escapes lets interactive input spell line breaks and tabs as \n and \t
	escapes bool
}

var grammars = map[string]grammar{
	"arith": {run: textGrammar(arith.Expr())},
	"arith-tokens": {run: func(input string, opts options) ([]interpretation, error) {
		tokens, err := arith.Tokenize(input)
		if err != nil {
			return nil, err
		}
		return collect(arith.TokenExpr().Parse(tokens), opts), nil
	}},
	"json":    {run: textGrammar(json.Grammar())},
	"matrix":  {run: textGrammar(matrix.Grammar()), escapes: true},
	"address": {run: textGrammar(address.Grammar()), escapes: true},
}

func grammarNames() string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return "[" + strings.Join(names, "|") + "]"
}

func lookupGrammar(name string) (grammar, error) {
	g, ok := grammars[name]
	if !ok {
		return grammar{}, fmt.Errorf("unknown grammar %q, choose one of %s", name, grammarNames())
	}
	return g, nil
}

func textGrammar[V any](p pcomb.Parser[pcomb.Text, V]) func(string, options) ([]interpretation, error) {
	return func(input string, opts options) ([]interpretation, error) {
		return collect(pcomb.ParseString(p, input), opts), nil
	}
}

func collect[T pcomb.Tape, V any](rs pcomb.Results[T, V], opts options) []interpretation {
	tracer().Debugf("grammar produced %d interpretations", len(rs))
	if opts.complete {
		rs = rs.RemoveIncomplete()
	}
	if opts.dedup {
		rs = rs.RemoveDuplicates()
	}
	items := make([]interpretation, len(rs))
	for i, r := range rs {
		items[i] = interpretation{
			value: fmt.Sprintf("%v", r.Value),
			rest:  fmt.Sprintf("%v", r.Tail),
		}
	}
	return items
}

var unescaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// interpret runs a grammar on an input.
func interpret(name, input string, opts options, interactive bool) ([]interpretation, error) {
	g, err := lookupGrammar(name)
	if err != nil {
		return nil, err
	}
	if interactive && g.escapes {
		input = unescaper.Replace(input)
	}
	return g.run(input, opts)
}
