package pcomb

// Sequencing of parsers. Each SeqN combinator runs its arguments one after
// another, every parser continuing on the tails its predecessor left. The
// resulting values are collected into tuples.
//
// Sequencing is a right-fold of FlatMap, with a final Map:
//
//     Seq3(p1, p2, p3) = p1 >>= (v1 → p2 >>= (v2 → p3 ∘ (v3 → (v1, v2, v3))))
//
// No interpretation is pruned along the way. For ambiguous sub-parsers this
// results in the full cross product of interpretations.

// Tuple2 holds the values of a sequence of two parsers.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds the values of a sequence of three parsers.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds the values of a sequence of four parsers.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds the values of a sequence of five parsers.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 holds the values of a sequence of six parsers.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Seq2 sequences two parsers.
func Seq2[T Tape, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, Tuple2[A, B]] {
	return FlatMap(p1, func(v1 A) Parser[T, Tuple2[A, B]] {
		return Map(p2, func(v2 B) Tuple2[A, B] {
			return Tuple2[A, B]{v1, v2}
		})
	})
}

// Seq3 sequences three parsers.
func Seq3[T Tape, A, B, C any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C]) Parser[T, Tuple3[A, B, C]] {
	return FlatMap(p1, func(v1 A) Parser[T, Tuple3[A, B, C]] {
		return FlatMap(p2, func(v2 B) Parser[T, Tuple3[A, B, C]] {
			return Map(p3, func(v3 C) Tuple3[A, B, C] {
				return Tuple3[A, B, C]{v1, v2, v3}
			})
		})
	})
}

// Seq4 sequences four parsers.
func Seq4[T Tape, A, B, C, D any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C],
	p4 Parser[T, D]) Parser[T, Tuple4[A, B, C, D]] {
	//
	return FlatMap(p1, func(v1 A) Parser[T, Tuple4[A, B, C, D]] {
		return FlatMap(p2, func(v2 B) Parser[T, Tuple4[A, B, C, D]] {
			return FlatMap(p3, func(v3 C) Parser[T, Tuple4[A, B, C, D]] {
				return Map(p4, func(v4 D) Tuple4[A, B, C, D] {
					return Tuple4[A, B, C, D]{v1, v2, v3, v4}
				})
			})
		})
	})
}

// Seq5 sequences five parsers.
func Seq5[T Tape, A, B, C, D, E any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C],
	p4 Parser[T, D], p5 Parser[T, E]) Parser[T, Tuple5[A, B, C, D, E]] {
	//
	return FlatMap(p1, func(v1 A) Parser[T, Tuple5[A, B, C, D, E]] {
		return FlatMap(p2, func(v2 B) Parser[T, Tuple5[A, B, C, D, E]] {
			return FlatMap(p3, func(v3 C) Parser[T, Tuple5[A, B, C, D, E]] {
				return FlatMap(p4, func(v4 D) Parser[T, Tuple5[A, B, C, D, E]] {
					return Map(p5, func(v5 E) Tuple5[A, B, C, D, E] {
						return Tuple5[A, B, C, D, E]{v1, v2, v3, v4, v5}
					})
				})
			})
		})
	})
}

// Seq6 sequences six parsers.
func Seq6[T Tape, A, B, C, D, E, F any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C],
	p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F]) Parser[T, Tuple6[A, B, C, D, E, F]] {
	//
	return FlatMap(p1, func(v1 A) Parser[T, Tuple6[A, B, C, D, E, F]] {
		return FlatMap(p2, func(v2 B) Parser[T, Tuple6[A, B, C, D, E, F]] {
			return FlatMap(p3, func(v3 C) Parser[T, Tuple6[A, B, C, D, E, F]] {
				return FlatMap(p4, func(v4 D) Parser[T, Tuple6[A, B, C, D, E, F]] {
					return FlatMap(p5, func(v5 E) Parser[T, Tuple6[A, B, C, D, E, F]] {
						return Map(p6, func(v6 F) Tuple6[A, B, C, D, E, F] {
							return Tuple6[A, B, C, D, E, F]{v1, v2, v3, v4, v5, v6}
						})
					})
				})
			})
		})
	})
}

// SeqAll sequences any number of parsers of the same value type. An empty
// sequence succeeds with an empty slice, consuming nothing.
func SeqAll[T Tape, V any](ps ...Parser[T, V]) Parser[T, []V] {
	if len(ps) == 0 {
		return Success[T]([]V{})
	}
	rest := SeqAll(ps[1:]...)
	return FlatMap(ps[0], func(v V) Parser[T, []V] {
		return Map(rest, func(vs []V) []V {
			return append([]V{v}, vs...)
		})
	})
}
