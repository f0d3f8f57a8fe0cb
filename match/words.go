package match

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/pcomb"
)

// Word is an entry of a dictionary for Words.
type Word[V comparable] struct {
	Literal string
	Value   V
}

// W is a shortcut to create dictionary entries.
func W[V comparable](lit string, value V) Word[V] {
	return Word[V]{Literal: lit, Value: value}
}

// Words matches the first literal of a dictionary which is a prefix of the
// input, in the order the entries are given. The value is the entry's value.
// Words produces at most one interpretation: if "in" is declared before
// "int", input "int" will match "in".
//
// Repeating a literal with the same value is allowed. Words panics if a
// literal is mapped to two different values or if a literal is empty.
func Words[V comparable](entries ...Word[V]) pcomb.Parser[pcomb.Text, V] {
	dict := linkedhashmap.New()
	for _, e := range entries {
		if e.Literal == "" {
			panic("match: empty literal in dictionary")
		}
		if w, found := dict.Get(e.Literal); found {
			if v := w.(Word[V]).Value; v != e.Value {
				panic(fmt.Sprintf("match: conflicting dictionary values for literal %q: %v and %v",
					e.Literal, v, e.Value))
			}
			continue
		}
		dict.Put(e.Literal, e)
	}
	tracer().Debugf("dictionary with %d literals", dict.Size())
	return pcomb.ParserFunc[pcomb.Text, V](func(input pcomb.Text) pcomb.Results[pcomb.Text, V] {
		text := input.String()
		it := dict.Iterator()
		for it.Next() {
			lit := it.Key().(string)
			if strings.HasPrefix(text, lit) {
				return pcomb.Results[pcomb.Text, V]{{Value: it.Value().(Word[V]).Value, Tail: input.Drop(len(lit))}}
			}
		}
		return nil
	})
}
