package arith

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var expressions = []struct {
	input string
	value int64
}{
	{"1", 1},
	{"1+2", 3},
	{"2*3+4", 10},
	{"2+3*4", 14},
	{"(14+7)*2", 42},
	{" ( 1 + 1 ) * ( 2 + 2 ) ", 8},
	{"((((3))))", 3},
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	for _, e := range expressions {
		v, err := Eval(e.input)
		if err != nil {
			t.Errorf("Expected %q to evaluate, got error: %v", e.input, err)
			continue
		}
		if v != e.value {
			t.Errorf("Expected %q to be %d, is %d", e.input, e.value, v)
		}
	}
}

func TestEvalFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	for _, input := range []string{")", "", "1+", "(1", "1 2"} {
		if _, err := Eval(input); !errors.Is(err, ErrNoParse) {
			t.Errorf("Expected %q not to parse, error is %v", input, err)
		}
	}
}

func TestExprIsAmbiguousBeforeFiltering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	rs := pcomb.ParseString(Expr(), "(14+7)*2")
	if len(rs) < 2 {
		t.Errorf("Expected incomplete interpretations besides the complete one, have %d", len(rs))
	}
	complete := rs.RemoveIncomplete().RemoveDuplicates()
	if !complete.IsSuccess() || complete[0].Value != 42 {
		t.Errorf("Expected unique value 42, is %v", complete)
	}
	if rs = pcomb.ParseString(Expr(), ")"); !rs.IsFailure() {
		t.Errorf("Expected ')' to fail, is %v", rs)
	}
}

func TestEvalTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	for _, e := range expressions {
		v, err := EvalTokens(e.input)
		if err != nil {
			t.Errorf("Expected %q to evaluate, got error: %v", e.input, err)
			continue
		}
		if v != e.value {
			t.Errorf("Expected %q to be %d, is %d", e.input, e.value, v)
		}
	}
	if _, err := EvalTokens(")"); !errors.Is(err, ErrNoParse) {
		t.Errorf("Expected ')' not to parse, error is %v", err)
	}
}

func TestGoTokenizerTape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	// Go tokens for punctuation carry the rune as their type, as do ours
	tokens := scanner.Tape(scanner.GoTokenizer("expr", strings.NewReader("(14 + 7) * 2")))
	rs := TokenExpr().Parse(tokens).RemoveIncomplete().RemoveDuplicates()
	if !rs.IsSuccess() || rs[0].Value != 42 {
		t.Errorf("Expected unique value 42, is %v", rs)
	}
}
