package eager

import (
	"github.com/npillmayer/pcomb"
)

// Verdict is a strategy's judgement on a prefix.
type Verdict int8

// Verdicts of strategies.
const (
	Reject  Verdict = iota // prefix is invalid, and so is every longer prefix
	Accept                 // prefix converts to a value
	Partial                // prefix is invalid on its own, but may be continued
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Partial:
		return "partial"
	}
	return "reject"
}

// Strategy converts a prefix of an input to a value.
type Strategy[T pcomb.Tape, V any] interface {
	Convert(prefix T) (V, Verdict)
}

// StrategyFunc is an adapter to use ordinary functions as strategies.
type StrategyFunc[T pcomb.Tape, V any] func(prefix T) (V, Verdict)

// Convert calls f(prefix).
func (f StrategyFunc[T, V]) Convert(prefix T) (V, Verdict) {
	return f(prefix)
}

// Predicate creates a strategy from a conversion function which knows no
// partial prefixes.
func Predicate[T pcomb.Tape, V any](convert func(T) (V, bool)) Strategy[T, V] {
	return StrategyFunc[T, V](func(prefix T) (V, Verdict) {
		v, ok := convert(prefix)
		if !ok {
			return v, Reject
		}
		return v, Accept
	})
}

// MaxParser matches the longest prefix its strategy accepts. Prefixes grow by
// one element at a time, and growing stops at the first rejected prefix.
type MaxParser[T pcomb.Sliceable[T], V any] struct {
	Strategy Strategy[T, V]
}

// Max creates a parser for the longest prefix accepted by strategy s. Type
// parameters usually have to be given explicitly:
//
//     hex := eager.Max[pcomb.Text, uint64](myHexStrategy)
//
func Max[T pcomb.Sliceable[T], V any](s Strategy[T, V]) pcomb.Parser[T, V] {
	return MaxParser[T, V]{Strategy: s}
}

// Parse is part of interface pcomb.Parser. It produces at most one
// interpretation.
func (mp MaxParser[T, V]) Parse(input T) pcomb.Results[T, V] {
	var value V
	n, accepted := 0, 0
	for n < input.Len() {
		w := input.Drop(n).Width()
		if w == 0 {
			break
		}
		n += w
		v, verdict := mp.Strategy.Convert(input.Prefix(n))
		if verdict == Reject {
			break
		}
		if verdict == Accept {
			value, accepted = v, n
		}
	}
	if accepted == 0 {
		return nil
	}
	tracer().Debugf("eager match of length %d", accepted)
	return pcomb.Results[T, V]{{Value: value, Tail: input.Drop(accepted)}}
}
