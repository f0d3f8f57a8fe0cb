package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/match"
)

// ErrNoParse is returned for input which is not a JSON value.
var ErrNoParse = errors.New("not a JSON value")

// ErrAmbiguous is returned if an input has more than one interpretation as
// a JSON value. This indicates an error in the grammar.
var ErrAmbiguous = errors.New("ambiguous JSON value")

// JSON considers space, tab, newline and carriage return as whitespace only.
var ws = match.Runes(func(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
})

// tok matches p and any whitespace following it.
func tok[V any](p pcomb.Parser[pcomb.Text, V]) pcomb.Parser[pcomb.Text, V] {
	return pcomb.Map(pcomb.Seq2(p, ws), func(t pcomb.Tuple2[V, string]) V {
		return t.V1
	})
}

func sym(s string) pcomb.Parser[pcomb.Text, struct{}] {
	return pcomb.Void(tok(match.Exactly(s)))
}

// generic wraps values of parsers for different JSON types.
func generic[V any](p pcomb.Parser[pcomb.Text, V]) pcomb.Parser[pcomb.Text, interface{}] {
	return pcomb.Map(p, func(v V) interface{} { return v })
}

const numberPattern = `-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`

var number = tok(pcomb.CompactMap(match.RegexString(numberPattern), func(lexeme string) (float64, bool) {
	f, err := strconv.ParseFloat(lexeme, 64)
	return f, err == nil
}))

// Escape sequences of JSON strings differ from Go's, e.g. "\/", therefore
// decoding a string literal is left to encoding/json.
var str = tok(pcomb.CompactMap(match.RegexString(`"(?:[^"\\]|\\.)*"`), func(lexeme string) (string, bool) {
	var s string
	err := json.Unmarshal([]byte(lexeme), &s)
	return s, err == nil
}))

var keyword = tok(match.Words[interface{}](
	match.W[interface{}]("true", true),
	match.W[interface{}]("false", false),
	match.W[interface{}]("null", nil),
))

type member struct {
	key   string
	value interface{}
}

// Grammar returns a parser for a JSON value, optionally surrounded by
// whitespace.
func Grammar() pcomb.Parser[pcomb.Text, interface{}] {
	var value pcomb.Parser[pcomb.Text, interface{}]
	ref := pcomb.Ref(&value)
	//
	elements := pcomb.OrSuccess[pcomb.Text, []interface{}](pcomb.Repeat(ref, sym(",")), nil)
	array := pcomb.Map(pcomb.Seq3(sym("["), elements, sym("]")),
		func(t pcomb.Tuple3[struct{}, []interface{}, struct{}]) []interface{} {
			if t.V2 == nil {
				return []interface{}{}
			}
			return t.V2
		})
	//
	pair := pcomb.Map(pcomb.Seq3(str, sym(":"), ref),
		func(t pcomb.Tuple3[string, struct{}, interface{}]) member {
			return member{key: t.V1, value: t.V3}
		})
	members := pcomb.OrSuccess[pcomb.Text, []member](pcomb.Repeat(pair, sym(",")), nil)
	object := pcomb.Map(pcomb.Seq3(sym("{"), members, sym("}")),
		func(t pcomb.Tuple3[struct{}, []member, struct{}]) map[string]interface{} {
			obj := make(map[string]interface{}, len(t.V2))
			for _, m := range t.V2 {
				obj[m.key] = m.value // last one wins for duplicate keys
			}
			return obj
		})
	//
	value = pcomb.Or(
		generic(object),
		generic(array),
		generic(str),
		generic(number),
		keyword,
	)
	return pcomb.Map(pcomb.Seq2(ws, value), func(t pcomb.Tuple2[string, interface{}]) interface{} {
		return t.V2
	})
}

// Parse parses a complete JSON text.
func Parse(input string) (interface{}, error) {
	rs := pcomb.ParseString(Grammar(), input)
	tracer().Debugf("%d interpretations as JSON", len(rs))
	rs = rs.RemoveIncomplete().RemoveDuplicates()
	if rs.IsFailure() {
		return nil, fmt.Errorf("%.40q: %w", input, ErrNoParse)
	}
	if !rs.IsUnique() {
		return nil, fmt.Errorf("%.40q has %d interpretations: %w", input, len(rs), ErrAmbiguous)
	}
	return rs[0].Value, nil
}

