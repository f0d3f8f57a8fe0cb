package pcomb

import "fmt"

// Grammar rules.
//
// Grammars are usually written as a set of mutually recursive rules. A rule
// has a name, a body parser and a transformation from the body's value to the
// rule's value. The body is constructed anew for every parse, which allows
// rules to reference each other regardless of declaration order.

// Definition is the interface for user-defined grammar rules.
//
// A type implementing Definition may be turned into a parser with Define.
type Definition[T Tape, B, V any] interface {
	Body() Parser[T, B]
	Transform(B) V
}

// Rule is a named grammar rule. Create one with NewRule, Named or Define.
type Rule[T Tape, B, V any] struct {
	name      string
	body      func() Parser[T, B]
	transform func(B) V
}

// NewRule creates a rule. body is called for every parse to construct the
// rule's body parser, transform converts the body's values to the rule's
// values.
func NewRule[T Tape, B, V any](name string, body func() Parser[T, B], transform func(B) V) *Rule[T, B, V] {
	if body == nil || transform == nil {
		panic("pcomb: rule " + name + " needs a body and a transformation")
	}
	return &Rule[T, B, V]{name: name, body: body, transform: transform}
}

// Named creates a rule which does not transform its body's values.
func Named[T Tape, V any](name string, body func() Parser[T, V]) Parser[T, V] {
	return NewRule(name, body, func(v V) V { return v })
}

// Define creates a parser from a user-defined rule.
func Define[T Tape, B, V any](d Definition[T, B, V]) Parser[T, V] {
	return NewRule(fmt.Sprintf("%T", d), d.Body, d.Transform)
}

// Name returns the name of the rule.
func (r *Rule[T, B, V]) Name() string {
	return r.name
}

// Parse is part of interface Parser.
func (r *Rule[T, B, V]) Parse(input T) Results[T, V] {
	tracer().Debugf("rule %s on %d units of input", r.name, input.Len())
	rs := r.body().Parse(input)
	if len(rs) == 0 {
		return nil
	}
	values := make(Results[T, V], len(rs))
	for i, b := range rs {
		values[i] = Interpretation[T, V]{Value: r.transform(b.Value), Tail: b.Tail}
	}
	return values
}

func (r *Rule[T, B, V]) String() string {
	return "<rule " + r.name + ">"
}
