package lexmach

import (
	"testing"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/match"
	"github.com/npillmayer/pcomb/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 2, 3, 3}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	tokens, err := LM.Tokenize("(f 12 t)")
	if err != nil {
		t.Fatal(err)
	}
	if tokens.Len() != 5 {
		t.Fatalf("Expected 5 tokens, is %d: %v", tokens.Len(), tokens)
	}
	if tok := tokens.Elements()[2]; tok.Lexeme() != "12" || tok.Span().From() != 3 || tok.Span().To() != 5 {
		t.Errorf("Expected token '12' at (3…5), is %q at %v", tok.Lexeme(), tok.Span())
	}
	list := pcomb.Seq3(
		match.TokenLexeme("("),
		pcomb.OneOrMore(match.Token(pcomb.TokType(tokenIds["ID"]), pcomb.TokType(tokenIds["NUM"]),
			pcomb.TokType(tokenIds["t"]))),
		match.TokenLexeme(")"))
	rs := list.Parse(tokens)
	if !rs.IsSuccess() || len(rs[0].Value.V2) != 3 {
		t.Errorf("Expected a list of 3 atoms, is %v", rs)
	}
}

func TestTokenizeReportsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	tokens, err := LM.Tokenize("x ~ y")
	if err == nil {
		t.Errorf("Expected unconsumed input to be reported")
	}
	if tokens.Len() != 2 {
		t.Errorf("Expected scanning to continue after error, have %d tokens", tokens.Len())
	}
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"'",
		"(",
		")",
		"[",
		"]",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"t",
	}
	tokens = []string{
		"COMMENT",
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = int(scanner.Comment)
	tokenIds["ID"] = int(scanner.Ident)
	tokenIds["NUM"] = int(scanner.Int)
	tokenIds["STRING"] = int(scanner.String)
	for i, tok := range tokens[4:] {
		tokenIds[tok] = i + 10
	}
}
