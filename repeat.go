package pcomb

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// Repetition combinators.
//
// All of them explore ambiguous patterns thread by thread. A thread is one
// lineage of interpretations: the values accumulated so far plus the tail
// they left. As long as a thread can be extended by another match, it is
// extended; if the pattern has k interpretations on a thread's tail, the
// thread forks into k threads. A thread is reported only when it cannot be
// extended any further. Consequently every interpretation of a repetition is a
// locally maximal repetition along its thread. Shorter repetitions of an
// extendable thread are not reported.
//
// An iteration which consumes no input would extend a thread forever. Such
// forks are not taken; for debugging a grammar, configuration key
// "panic-on-stalled-repetition" may be set to make the engine panic instead.

// thread is one line of ambiguity carried through a repetition.
type thread[T Tape, V any] struct {
	values []V
	tail   T
	done   bool
}

// extend returns a new thread with v appended. The first fork of a thread
// takes over its values and appends in place; every further fork gets a copy,
// so that no two open threads share a backing array.
func (th thread[T, V]) extend(v V, tail T, owner bool) thread[T, V] {
	if owner {
		return thread[T, V]{values: append(th.values, v), tail: tail}
	}
	values := make([]V, len(th.values), len(th.values)+1)
	copy(values, th.values)
	return thread[T, V]{values: append(values, v), tail: tail}
}

// repeatThreads runs the fork-and-extend loop until every thread is done.
// step computes the possible extensions of a thread, given its tail.
func repeatThreads[T Tape, V any](threads []thread[T, V], step func(T) Results[T, V]) Results[T, []V] {
	rounds := 0
	for hasOpenThreads(threads) {
		rounds++
		next := make([]thread[T, V], 0, len(threads))
		for _, th := range threads {
			if th.done {
				next = append(next, th)
				continue
			}
			forked := false
			for _, ext := range step(th.tail) {
				if ext.Tail.Len() >= th.tail.Len() {
					stalled(th.tail.Len())
					continue
				}
				next = append(next, th.extend(ext.Value, ext.Tail, !forked))
				forked = true
			}
			if !forked {
				th.done = true
				next = append(next, th)
			}
		}
		threads = next
	}
	tracer().Debugf("repetition finished after %d rounds with %d threads", rounds, len(threads))
	results := make(Results[T, []V], len(threads))
	for i, th := range threads {
		results[i] = Interpretation[T, []V]{Value: th.values, Tail: th.tail}
	}
	return results
}

func hasOpenThreads[T Tape, V any](threads []thread[T, V]) bool {
	for _, th := range threads {
		if !th.done {
			return true
		}
	}
	return false
}

func stalled(remaining int) {
	tracer().Debugf("repetition stalled with %d units of input remaining", remaining)
	if gconf.GetBool("panic-on-stalled-repetition") {
		panic(fmt.Sprintf(`pcomb: repetition stalled with %d units of input remaining.

A repeated pattern matched without consuming input. Configuration flag
panic-on-stalled-repetition is set to true to help debugging such grammars.
Unset it to let the engine stop the affected thread instead.`, remaining))
	}
}

// ZeroOrMore matches pattern as often as possible. If pattern does not match
// at the start of the input, the result is a single interpretation with an
// empty slice, consuming nothing. Otherwise every interpretation is a
// repetition which cannot be extended any further (see the comment on
// repetition combinators above).
func ZeroOrMore[T Tape, V any](pattern Parser[T, V]) Parser[T, []V] {
	return ParserFunc[T, []V](func(input T) Results[T, []V] {
		first := pattern.Parse(input)
		if len(first) == 0 {
			return Results[T, []V]{{Value: []V{}, Tail: input}}
		}
		threads := make([]thread[T, V], len(first))
		for i, r := range first {
			threads[i] = thread[T, V]{values: []V{r.Value}, tail: r.Tail}
		}
		return repeatThreads(threads, pattern.Parse)
	})
}

// OneOrMore matches pattern at least once, then as often as possible. It
// fails if pattern does not match at the start of the input.
func OneOrMore[T Tape, V any](pattern Parser[T, V]) Parser[T, []V] {
	more := ZeroOrMore(pattern)
	return FlatMap(pattern, func(first V) Parser[T, []V] {
		return Map(more, func(rest []V) []V {
			return append([]V{first}, rest...)
		})
	})
}

// Repeat matches a non-empty list of pattern matches, separated by separator.
// A thread is extended only if the separator matches and the pattern matches
// right after it. A trailing separator without a subsequent pattern match is
// therefore never consumed. Repeat fails if pattern does not match at the
// start of the input.
func Repeat[T Tape, V, S any](pattern Parser[T, V], separator Parser[T, S]) Parser[T, []V] {
	next := func(tail T) Results[T, V] {
		var exts Results[T, V]
		for _, sep := range separator.Parse(tail) {
			exts = append(exts, pattern.Parse(sep.Tail)...)
		}
		return exts
	}
	return ParserFunc[T, []V](func(input T) Results[T, []V] {
		first := pattern.Parse(input)
		if len(first) == 0 {
			return nil
		}
		threads := make([]thread[T, V], len(first))
		for i, r := range first {
			threads[i] = thread[T, V]{values: []V{r.Value}, tail: r.Tail}
		}
		return repeatThreads(threads, next)
	})
}
