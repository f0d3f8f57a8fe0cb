package match

import (
	"strings"

	"github.com/npillmayer/pcomb"
)

// Exactly matches the literal string lit at the start of a text.
func Exactly(lit string) pcomb.Parser[pcomb.Text, string] {
	return pcomb.ParserFunc[pcomb.Text, string](func(input pcomb.Text) pcomb.Results[pcomb.Text, string] {
		if !strings.HasPrefix(input.String(), lit) {
			return nil
		}
		return pcomb.Results[pcomb.Text, string]{{Value: lit, Tail: input.Drop(len(lit))}}
	})
}

// Literal matches a literal sequence of elements at the start of a sequence
// tape.
func Literal[E comparable](lit ...E) pcomb.Parser[pcomb.Seq[E], []E] {
	return pcomb.ParserFunc[pcomb.Seq[E], []E](func(input pcomb.Seq[E]) pcomb.Results[pcomb.Seq[E], []E] {
		elems := input.Elements()
		if len(elems) < len(lit) {
			return nil
		}
		for i, e := range lit {
			if elems[i] != e {
				return nil
			}
		}
		return pcomb.Results[pcomb.Seq[E], []E]{{Value: lit, Tail: input.Drop(len(lit))}}
	})
}

// While matches the longest prefix of elements satisfying pred. It never
// fails; if the first element does not satisfy pred, the value is an empty
// tape.
//
// Type parameters cannot be inferred from pred alone:
//
//     digits := match.While[pcomb.Text](unicode.IsDigit)
//
func While[T pcomb.Sequence[T, E], E any](pred func(E) bool) pcomb.Parser[T, T] {
	return pcomb.ParserFunc[T, T](func(input T) pcomb.Results[T, T] {
		n := prefixLength(input, pred)
		return pcomb.Results[T, T]{{Value: input.Prefix(n), Tail: input.Drop(n)}}
	})
}

// One matches a single element satisfying pred.
func One[T pcomb.Sequence[T, E], E any](pred func(E) bool) pcomb.Parser[T, E] {
	return pcomb.ParserFunc[T, E](func(input T) pcomb.Results[T, E] {
		e, ok := input.Head()
		if !ok || !pred(e) {
			return nil
		}
		return pcomb.Results[T, E]{{Value: e, Tail: input.Drop(input.Width())}}
	})
}

// Runes matches the longest prefix of a text whose runes satisfy pred. It
// never fails.
func Runes(pred func(rune) bool) pcomb.Parser[pcomb.Text, string] {
	return pcomb.Map(While[pcomb.Text](pred), pcomb.Text.String)
}

// Rune matches a single given rune.
func Rune(r rune) pcomb.Parser[pcomb.Text, rune] {
	return One[pcomb.Text](func(c rune) bool { return c == r })
}

func prefixLength[T pcomb.Sequence[T, E], E any](input T, pred func(E) bool) int {
	n := 0
	for rest := input; ; {
		e, ok := rest.Head()
		if !ok || !pred(e) {
			return n
		}
		w := rest.Width()
		n += w
		rest = rest.Drop(w)
	}
}

// --- String parser ---------------------------------------------------------

// Option configures a StringParser.
type Option func(*stringParser)

// SkipAfter makes a StringParser drop all runes satisfying skip following a
// match. Skipped runes are not part of the match's value.
func SkipAfter(skip func(rune) bool) Option {
	return func(sp *stringParser) {
		sp.skip = skip
	}
}

type stringParser struct {
	allowed func(rune) bool
	skip    func(rune) bool
}

// StringParser matches the longest non-empty prefix of runes satisfying
// allowed. Contrary to Runes it fails if not a single rune matches.
func StringParser(allowed func(rune) bool, opts ...Option) pcomb.Parser[pcomb.Text, string] {
	sp := &stringParser{allowed: allowed}
	for _, opt := range opts {
		opt(sp)
	}
	return pcomb.ParserFunc[pcomb.Text, string](sp.parse)
}

func (sp *stringParser) parse(input pcomb.Text) pcomb.Results[pcomb.Text, string] {
	n := prefixLength(input, sp.allowed)
	if n == 0 {
		return nil
	}
	value, tail := input.Prefix(n).String(), input.Drop(n)
	if sp.skip != nil {
		tail = tail.Drop(prefixLength(tail, sp.skip))
	}
	return pcomb.Results[pcomb.Text, string]{{Value: value, Tail: tail}}
}

// --- Tokens ----------------------------------------------------------------

// Token matches a single token of one of the given token types.
func Token(types ...pcomb.TokType) pcomb.Parser[pcomb.TokenTape, pcomb.Token] {
	return One[pcomb.TokenTape](func(tok pcomb.Token) bool {
		for _, t := range types {
			if tok.TokType() == t {
				return true
			}
		}
		return false
	})
}

// TokenLexeme matches a single token with the given lexeme, regardless of its
// type.
func TokenLexeme(lexeme string) pcomb.Parser[pcomb.TokenTape, pcomb.Token] {
	return One[pcomb.TokenTape](func(tok pcomb.Token) bool {
		return tok.Lexeme() == lexeme
	})
}
