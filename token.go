package pcomb

import "fmt"

// --- Token tapes -----------------------------------------------------------

// TokType categorizes tokens. Token categories are application specific, so
// no constants are defined here. Package scanner re-exports the categories of
// text/scanner.
type TokType int

// Token is an input token, usually produced by a scanner. Grammars working on
// tokens instead of text use tapes of type TokenTape.
//
// For a floating point number a scanner could produce
//
//    TokType = Float    // category, application specific
//    Lexeme  = "3.1416" // as found in the input
//    Value   = 3.1416   // float64, or nil if the scanner does not convert
//    Span    = 67…73    // byte positions in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenTape is a tape of tokens. Narrowing a TokenTape never copies tokens.
type TokenTape = Seq[Token]

// NewTokenTape creates a tape over a slice of tokens.
func NewTokenTape(tokens []Token) TokenTape {
	return NewSeq(tokens)
}

// Span is a run of input positions, from a start position up to (but not
// including) an end position.
type Span [2]uint64

// From is the start position of s.
func (s Span) From() uint64 {
	return s[0]
}

// To is the position just behind the end of s.
func (s Span) To() uint64 {
	return s[1]
}

// Len is the number of positions covered by s.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
