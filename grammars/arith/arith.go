package arith

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/eager"
	"github.com/npillmayer/pcomb/match"
)

// ErrNoParse is returned for input which is not an arithmetic expression.
var ErrNoParse = errors.New("not an arithmetic expression")

// ErrAmbiguous is returned if an input has more than one complete
// interpretation with different values.
var ErrAmbiguous = errors.New("ambiguous arithmetic expression")

// symbols are the terminals of the grammar, for a given kind of tape.
type symbols[T pcomb.Tape] struct {
	plus, times, open, close pcomb.Parser[T, struct{}]
	number                   pcomb.Parser[T, int64]
}

// sum is the rule for Sum. Its body collects summands.
type sum[T pcomb.Tape] struct {
	sym *symbols[T]
}

func (s sum[T]) Body() pcomb.Parser[T, []int64] {
	p := product[T]{s.sym}.parser()
	return pcomb.Or(
		pcomb.Map(pcomb.Seq3(p, s.sym.plus, s.parser()), func(t pcomb.Tuple3[int64, struct{}, int64]) []int64 {
			return []int64{t.V1, t.V3}
		}),
		pcomb.Map(p, func(n int64) []int64 { return []int64{n} }),
	)
}

func (s sum[T]) Transform(summands []int64) int64 {
	var result int64
	for _, n := range summands {
		result += n
	}
	return result
}

func (s sum[T]) parser() pcomb.Parser[T, int64] {
	return pcomb.Define[T, []int64, int64](s)
}

// product is the rule for Product. Its body collects factors.
type product[T pcomb.Tape] struct {
	sym *symbols[T]
}

func (p product[T]) Body() pcomb.Parser[T, []int64] {
	f := factor(p.sym)
	return pcomb.Or(
		pcomb.Map(pcomb.Seq3(f, p.sym.times, p.parser()), func(t pcomb.Tuple3[int64, struct{}, int64]) []int64 {
			return []int64{t.V1, t.V3}
		}),
		pcomb.Map(f, func(n int64) []int64 { return []int64{n} }),
	)
}

func (p product[T]) Transform(factors []int64) int64 {
	var result int64 = 1
	for _, n := range factors {
		result *= n
	}
	return result
}

func (p product[T]) parser() pcomb.Parser[T, int64] {
	return pcomb.Define[T, []int64, int64](p)
}

func factor[T pcomb.Tape](sym *symbols[T]) pcomb.Parser[T, int64] {
	return pcomb.Named("Factor", func() pcomb.Parser[T, int64] {
		parens := pcomb.Map(pcomb.Seq3(sym.open, sum[T]{sym}.parser(), sym.close),
			func(t pcomb.Tuple3[struct{}, int64, struct{}]) int64 {
				return t.V2
			})
		return pcomb.Or(parens, sym.number)
	})
}

// --- Text ------------------------------------------------------------------

var whitespace = match.Runes(unicode.IsSpace)

// skipping matches p and any whitespace following it.
func skipping[V any](p pcomb.Parser[pcomb.Text, V]) pcomb.Parser[pcomb.Text, V] {
	return pcomb.Map(pcomb.Seq2(p, whitespace), func(t pcomb.Tuple2[V, string]) V {
		return t.V1
	})
}

func textSymbol(s string) pcomb.Parser[pcomb.Text, struct{}] {
	return pcomb.Void(skipping(match.Exactly(s)))
}

var textSymbols = &symbols[pcomb.Text]{
	plus:  textSymbol("+"),
	times: textSymbol("*"),
	open:  textSymbol("("),
	close: textSymbol(")"),
	number: skipping(pcomb.CompactMap(eager.Uint(), func(n uint64) (int64, bool) {
		return int64(n), n <= 1<<63-1
	})),
}

// Expr is a parser for arithmetic expressions on text. Whitespace is allowed
// before and between terminals.
func Expr() pcomb.Parser[pcomb.Text, int64] {
	return pcomb.Map(pcomb.Seq2(whitespace, sum[pcomb.Text]{textSymbols}.parser()),
		func(t pcomb.Tuple2[string, int64]) int64 {
			return t.V2
		})
}

// Eval evaluates an arithmetic expression.
func Eval(input string) (int64, error) {
	return decide(input, pcomb.ParseString(Expr(), input))
}

// decide selects the value of the complete interpretations of input.
func decide[T pcomb.Tape](input string, rs pcomb.Results[T, int64]) (int64, error) {
	tracer().Debugf("%d interpretations for %q", len(rs), input)
	rs = rs.RemoveIncomplete().RemoveDuplicates()
	if rs.IsFailure() {
		return 0, fmt.Errorf("%q: %w", input, ErrNoParse)
	}
	if !rs.IsUnique() {
		return 0, fmt.Errorf("%q has %d values: %w", input, len(rs), ErrAmbiguous)
	}
	return rs[0].Value, nil
}
