package pcomb

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
)

// Interpretation is one outcome of a parse attempt: a value together with the
// input left unconsumed.
type Interpretation[T Tape, V any] struct {
	Value V
	Tail  T
}

func (i Interpretation[T, V]) String() string {
	return fmt.Sprintf("(%v | %v)", i.Value, i.Tail)
}

// Results is the collection of interpretations a parser found for an input.
// The order of interpretations is deterministic for a given parser and input.
// Results may contain duplicates.
//
// An empty (or nil) Results signals failure. There is no other failure marker:
// whether a parse is useful is decided by the presence of interpretations and
// by how much of the input they left over.
type Results[T Tape, V any] []Interpretation[T, V]

// IsFailure is true if no interpretation has been found.
func (rs Results[T, V]) IsFailure() bool {
	return len(rs) == 0
}

// IsUnique is true for exactly one interpretation.
func (rs Results[T, V]) IsUnique() bool {
	return len(rs) == 1
}

// IsSuccess is true if rs holds a single interpretation which consumed all of
// the input.
func (rs Results[T, V]) IsSuccess() bool {
	return rs.IsUnique() && rs[0].Tail.Len() == 0
}

// Values returns the values of all interpretations, in order.
func (rs Results[T, V]) Values() []V {
	if len(rs) == 0 {
		return nil
	}
	values := make([]V, len(rs))
	for i, r := range rs {
		values[i] = r.Value
	}
	return values
}

// RemoveIncomplete drops all interpretations which did not consume the
// complete input. rs is not modified.
func (rs Results[T, V]) RemoveIncomplete() Results[T, V] {
	var complete Results[T, V]
	for _, r := range rs {
		if r.Tail.Len() == 0 {
			complete = append(complete, r)
		}
	}
	return complete
}

// RemoveDuplicates drops interpretations equal to an earlier one, keeping the
// first occurence. Two interpretations are equal if their values are
// structurally equal and they left the same amount of input. The latter is
// sufficient for comparing tails, as all tails of a result set are suffixes
// of the same input.
//
// Values are compared by their structhash dump. Values must therefore not
// contain cycles.
func (rs Results[T, V]) RemoveDuplicates() Results[T, V] {
	if len(rs) < 2 {
		return rs
	}
	seen := hashset.New()
	var unique Results[T, V]
	for _, r := range rs {
		key := interpretationKey(r.Value, r.Tail.Len())
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		unique = append(unique, r)
	}
	tracer().Debugf("removed %d duplicate interpretations", len(rs)-len(unique))
	return unique
}

// Shortest returns the interpretations with the shortest remaining input.
// This is a common tie-break for ambiguous parses.
func (rs Results[T, V]) Shortest() Results[T, V] {
	if len(rs) == 0 {
		return nil
	}
	min := rs[0].Tail.Len()
	for _, r := range rs[1:] {
		if l := r.Tail.Len(); l < min {
			min = l
		}
	}
	var shortest Results[T, V]
	for _, r := range rs {
		if r.Tail.Len() == min {
			shortest = append(shortest, r)
		}
	}
	return shortest
}

func (rs Results[T, V]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, r := range rs {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(r.String())
	}
	b.WriteString(" }")
	return b.String()
}

// interpretationKey serializes a value and a tail length into a map key.
func interpretationKey(value interface{}, rest int) string {
	return string(structhash.Dump(struct {
		Value interface{}
		Rest  int
	}{value, rest}, 1))
}
