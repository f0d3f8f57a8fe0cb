package pcomb

import (
	"fmt"
	"unicode/utf8"
)

// --- Tapes -----------------------------------------------------------------

// Tape is a view onto the unconsumed rest of an input. Tapes are never
// modified. Parsers derive new tapes by narrowing, i.e. every tape handed out
// by a parser is a suffix of the tape it received.
//
// Len reports the remaining length in units of the tape (bytes for Text,
// elements for Seq). A tape with Len() == 0 is fully consumed.
type Tape interface {
	Len() int
}

// Sliceable is a tape which may be narrowed. Units are counted the same way as
// for Len.
type Sliceable[T any] interface {
	Tape
	Drop(n int) T   // skip the first n units
	Prefix(n int) T // view of the first n units only
	Width() int     // units occupied by the first element, 0 at end of input
}

// Sequence is a sliceable tape giving access to its elements.
type Sequence[T any, E any] interface {
	Sliceable[T]
	Head() (E, bool) // first element, false at end of input
}

// --- Text ------------------------------------------------------------------

// Text is a tape over a string. Go strings are immutable and slicing them does
// not copy, so a Text is just a substring plus the offset of this substring
// within the full input. Elements of a Text are runes, units are bytes.
type Text struct {
	s   string
	off int
}

var _ Sequence[Text, rune] = Text{}

// NewText creates a text tape for an input string.
func NewText(input string) Text {
	return Text{s: input}
}

// Len is part of interface Tape.
func (t Text) Len() int {
	return len(t.s)
}

// Drop is part of interface Sliceable. Dropping more than Len() bytes yields
// an empty tape.
func (t Text) Drop(n int) Text {
	if n > len(t.s) {
		n = len(t.s)
	}
	return Text{s: t.s[n:], off: t.off + n}
}

// Prefix is part of interface Sliceable.
func (t Text) Prefix(n int) Text {
	if n > len(t.s) {
		n = len(t.s)
	}
	return Text{s: t.s[:n], off: t.off}
}

// Width is part of interface Sliceable.
func (t Text) Width() int {
	if len(t.s) == 0 {
		return 0
	}
	_, w := utf8.DecodeRuneInString(t.s)
	return w
}

// Head is part of interface Sequence.
func (t Text) Head() (rune, bool) {
	if len(t.s) == 0 {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(t.s)
	return r, true
}

// Offset returns the byte position of this tape within the full input.
func (t Text) Offset() int {
	return t.off
}

// String returns the remaining text.
func (t Text) String() string {
	return t.s
}

// --- Generic sequences -----------------------------------------------------

// Seq is a tape over a slice of elements, e.g. tokens. As with Text, narrowing
// a Seq never copies the underlying slice.
type Seq[E any] struct {
	elems []E
	off   int
}

// NewSeq creates a tape over a slice of elements. The slice must not be
// modified afterwards.
func NewSeq[E any](elems []E) Seq[E] {
	return Seq[E]{elems: elems}
}

// Len is part of interface Tape.
func (s Seq[E]) Len() int {
	return len(s.elems)
}

// Drop is part of interface Sliceable.
func (s Seq[E]) Drop(n int) Seq[E] {
	if n > len(s.elems) {
		n = len(s.elems)
	}
	return Seq[E]{elems: s.elems[n:], off: s.off + n}
}

// Prefix is part of interface Sliceable.
func (s Seq[E]) Prefix(n int) Seq[E] {
	if n > len(s.elems) {
		n = len(s.elems)
	}
	return Seq[E]{elems: s.elems[:n:n], off: s.off}
}

// Width is part of interface Sliceable.
func (s Seq[E]) Width() int {
	if len(s.elems) == 0 {
		return 0
	}
	return 1
}

// Head is part of interface Sequence.
func (s Seq[E]) Head() (E, bool) {
	if len(s.elems) == 0 {
		var zero E
		return zero, false
	}
	return s.elems[0], true
}

// Offset returns the position of this tape within the full input.
func (s Seq[E]) Offset() int {
	return s.off
}

// Elements returns the remaining elements. Clients must not modify them.
func (s Seq[E]) Elements() []E {
	return s.elems
}

func (s Seq[E]) String() string {
	return fmt.Sprintf("%v", s.elems)
}
