package pcomb

// Parser is the central abstraction of this package. A parser maps an input
// tape to the set of all interpretations it finds. Parsers hold no mutable
// state: parsing the same input twice yields the same results in the same
// order, and a parser may be shared between goroutines.
//
// Combinators never modify their operands; they always return a new parser.
type Parser[T Tape, V any] interface {
	Parse(input T) Results[T, V]
}

// ParserFunc is an adapter to use ordinary functions as parsers.
type ParserFunc[T Tape, V any] func(input T) Results[T, V]

// Parse calls f(input).
func (f ParserFunc[T, V]) Parse(input T) Results[T, V] {
	return f(input)
}

// ParseString is a convenience function to run a text parser on a string.
func ParseString[V any](p Parser[Text, V], input string) Results[Text, V] {
	return p.Parse(NewText(input))
}

// --- Core algebra ----------------------------------------------------------

// Success is a parser which always produces exactly one interpretation:
// value v, consuming nothing.
func Success[T Tape, V any](v V) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		return Results[T, V]{{Value: v, Tail: input}}
	})
}

// Map transforms the value of every interpretation of p. Tails, count and
// order of interpretations are preserved.
func Map[T Tape, V, W any](p Parser[T, V], f func(V) W) Parser[T, W] {
	return ParserFunc[T, W](func(input T) Results[T, W] {
		rs := p.Parse(input)
		if len(rs) == 0 {
			return nil
		}
		mapped := make(Results[T, W], len(rs))
		for i, r := range rs {
			mapped[i] = Interpretation[T, W]{Value: f(r.Value), Tail: r.Tail}
		}
		return mapped
	})
}

// CompactMap transforms the value of every interpretation of p, dropping
// the interpretations for which f reports false.
func CompactMap[T Tape, V, W any](p Parser[T, V], f func(V) (W, bool)) Parser[T, W] {
	return ParserFunc[T, W](func(input T) Results[T, W] {
		var mapped Results[T, W]
		for _, r := range p.Parse(input) {
			if w, ok := f(r.Value); ok {
				mapped = append(mapped, Interpretation[T, W]{Value: w, Tail: r.Tail})
			}
		}
		return mapped
	})
}

// FlatMap (a.k.a. bind) continues every interpretation (v, tail) of p with
// parser f(v), applied to tail. The results of all continuations are
// concatenated in the order of p's interpretations.
//
// This is where ambiguity multiplies: n interpretations of p, each continued
// by a parser with m interpretations, yield n×m interpretations.
func FlatMap[T Tape, V, W any](p Parser[T, V], f func(V) Parser[T, W]) Parser[T, W] {
	return ParserFunc[T, W](func(input T) Results[T, W] {
		var all Results[T, W]
		for _, r := range p.Parse(input) {
			all = append(all, f(r.Value).Parse(r.Tail)...)
		}
		return all
	})
}

// Or is the union of alternatives: all interpretations of all parsers in ps,
// in argument order. No de-duplication is done.
func Or[T Tape, V any](ps ...Parser[T, V]) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		var all Results[T, V]
		for _, p := range ps {
			all = append(all, p.Parse(input)...)
		}
		return all
	})
}

// OrElse is short-circuit alternation: it returns the results of the first
// parser in ps which finds at least one interpretation. Remaining parsers are
// not run.
func OrElse[T Tape, V any](ps ...Parser[T, V]) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		for _, p := range ps {
			if rs := p.Parse(input); len(rs) > 0 {
				return rs
			}
		}
		return nil
	})
}

// OrSuccess returns the results of p, or a single interpretation with value
// dflt, consuming nothing, if p fails.
func OrSuccess[T Tape, V any](p Parser[T, V], dflt V) Parser[T, V] {
	return OrElse(p, Success[T](dflt))
}

// Optional makes p optional. If p fails, the result is a nil value consuming
// nothing.
func Optional[T Tape, V any](p Parser[T, V]) Parser[T, *V] {
	some := Map(p, func(v V) *V { return &v })
	return OrSuccess[T, *V](some, nil)
}

// Void discards the values of p. It is useful for sub-parsers which are
// needed to structure a grammar only, e.g. punctuation.
func Void[T Tape, V any](p Parser[T, V]) Parser[T, struct{}] {
	return Map(p, func(V) struct{} { return struct{}{} })
}

// Lazy defers the construction of a parser to parse time. construct is called
// anew for every parse. This makes it possible to reference a parser which is
// still under construction, in particular for recursive grammars:
//
//     var expr pcomb.Parser[pcomb.Text, int]
//     parens := pcomb.Seq3(open, pcomb.Lazy(func() pcomb.Parser[pcomb.Text, int] {
//         return expr
//     }), close)
//
func Lazy[T Tape, V any](construct func() Parser[T, V]) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		return construct().Parse(input)
	})
}

// Ref creates a parser which forwards to whatever *p holds at parse time.
func Ref[T Tape, V any](p *Parser[T, V]) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		if *p == nil {
			panic("pcomb: reference to parser which has not been set")
		}
		return (*p).Parse(input)
	})
}
