package arith

import (
	"strconv"
	"sync"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/match"
	"github.com/npillmayer/pcomb/scanner"
	"github.com/npillmayer/pcomb/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"+", "*", "(", ")"}

// tokenIds maps token names to token types
var tokenIds = map[string]int{
	"NUM": int(scanner.Int),
	"+":   '+',
	"*":   '*',
	"(":   '(',
	")":   ')',
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine adapter for arithmetic expressions.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", tokenIds["NUM"]))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, nil, tokenIds)
	})
	return lexer, lexerErr
}

// Tokenize splits an input into tokens for TokenExpr.
func Tokenize(input string) (pcomb.TokenTape, error) {
	lm, err := Lexer()
	if err != nil {
		return pcomb.TokenTape{}, err
	}
	return lm.Tokenize(input)
}

func tokenSymbol(lit string) pcomb.Parser[pcomb.TokenTape, struct{}] {
	return pcomb.Void(match.Token(pcomb.TokType(tokenIds[lit])))
}

var tokenSymbols = &symbols[pcomb.TokenTape]{
	plus:  tokenSymbol("+"),
	times: tokenSymbol("*"),
	open:  tokenSymbol("("),
	close: tokenSymbol(")"),
	number: pcomb.CompactMap(match.Token(scanner.Int), func(tok pcomb.Token) (int64, bool) {
		n, err := strconv.ParseInt(tok.Lexeme(), 10, 64)
		return n, err == nil
	}),
}

// TokenExpr is a parser for arithmetic expressions on tokens, as produced by
// Tokenize.
func TokenExpr() pcomb.Parser[pcomb.TokenTape, int64] {
	return sum[pcomb.TokenTape]{tokenSymbols}.parser()
}

// EvalTokens tokenizes and evaluates an arithmetic expression.
func EvalTokens(input string) (int64, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	return decide(input, TokenExpr().Parse(tokens))
}
