/*
Package scanner provides tokenizers for parsing token streams instead of text.

Parsers of package pcomb work on any tape. Grammars for larger languages are
often easier to write on top of tokens, and for these a tokenizer is run over
the input first. Function Tape collects the tokens of a tokenizer into a
token tape:

    tokens := scanner.Tape(scanner.GoTokenizer("input", strings.NewReader("x+1")))
    rs := myGrammar.Parse(tokens)

Three tokenizers are provided: (1) a thin wrapper over the Go std lib
'text/scanner', (2) a tokenizer grouping runes by category codes, and (3) an
adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"strconv"
	"text/scanner"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = pcomb.TokType(scanner.EOF)
	Ident     = pcomb.TokType(scanner.Ident)
	Int       = pcomb.TokType(scanner.Int)
	Float     = pcomb.TokType(scanner.Float)
	Char      = pcomb.TokType(scanner.Char)
	String    = pcomb.TokType(scanner.String)
	RawString = pcomb.TokType(scanner.RawString)
	Comment   = pcomb.TokType(scanner.Comment)
)

// Tokenizer is a scanner interface. After the end of input, NextToken returns
// a token of type EOF.
type Tokenizer interface {
	NextToken() pcomb.Token
	SetErrorHandler(func(error))
}

// Tape reads all tokens from a tokenizer, up to but not including EOF, and
// returns them as a tape.
func Tape(t Tokenizer) pcomb.TokenTape {
	var tokens []pcomb.Token
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	tracer().Debugf("token tape of length %d", len(tokens))
	return pcomb.NewTokenTape(tokens)
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(&PositionError{Pos: s.Position.String(), Msg: msg})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() pcomb.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	lexeme := t.TokenText()
	return DefaultToken{
		kind:   pcomb.TokType(t.lastToken),
		lexeme: lexeme,
		Val:    tokenValue(t.lastToken, lexeme),
		span:   pcomb.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// tokenValue converts the lexeme of a literal: int64 for Int, float64 for
// Float, the unquoted string for String, RawString and Char. Other tokens,
// and literals which do not convert (e.g. an overflowing integer), have no
// value.
func tokenValue(kind rune, lexeme string) interface{} {
	switch kind {
	case scanner.Int:
		if n, err := strconv.ParseInt(lexeme, 0, 64); err == nil {
			return n
		}
	case scanner.Float:
		if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
			return f
		}
	case scanner.String, scanner.RawString, scanner.Char:
		if s, err := strconv.Unquote(lexeme); err == nil {
			return s
		}
	}
	return nil
}

// PositionError is an error reported by the Go tokenizer.
type PositionError struct {
	Pos string
	Msg string
}

func (e *PositionError) Error() string {
	return e.Pos + ": " + e.Msg
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for all
// the tokenizers of this package.
type DefaultToken struct {
	kind   pcomb.TokType
	lexeme string
	Val    interface{}
	span   pcomb.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ pcomb.TokType, lexeme string, span pcomb.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface pcomb.Token.
func (t DefaultToken) TokType() pcomb.TokType {
	return t.kind
}

// Value is part of interface pcomb.Token. It returns the converted value of
// literal tokens of the Go tokenizer and nil for all other tokens.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface pcomb.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface pcomb.Token.
func (t DefaultToken) Span() pcomb.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return t.lexeme
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}
