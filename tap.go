package pcomb

import (
	"github.com/npillmayer/schuko/tracing"
)

// Tap calls observer for every interpretation of p and passes the results on
// unchanged. It is meant for debugging grammars.
func Tap[T Tape, V any](p Parser[T, V], observer func(V, T)) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		rs := p.Parse(input)
		for _, r := range rs {
			observer(r.Value, r.Tail)
		}
		return rs
	})
}

// Trace logs every application of p, together with its interpretations, to
// the tracer of this package (key "pcomb.core"). Interpretations are dumped
// only if the trace level is Debug.
func Trace[T Tape, V any](name string, p Parser[T, V]) Parser[T, V] {
	return ParserFunc[T, V](func(input T) Results[T, V] {
		rs := p.Parse(input)
		tracer().P("parser", name).Infof("%d interpretations on %d units of input", len(rs), input.Len())
		tracing.With(tracer()).Dump(name, rs.Values())
		return rs
	})
}
