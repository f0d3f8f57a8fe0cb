package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pcomb"
)

// --- Category codes --------------------------------------------------------

// CatCode is a category code for runes. A category tokenizer groups adjacent
// runes of the same category into a single token, the token type being the
// category code.
type CatCode int16

// IllegalCatCode is the category for runes a categorizer does not know.
const IllegalCatCode CatCode = 0

// RuneCategorizer assigns category codes to runes. Runes of a loner category
// never form sequences; every one of them is a token of its own.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

// CatSeq is a sequence of runes of the same category.
type CatSeq struct {
	Cat    CatCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
}

// Categories is a categorizer from strings of runes: the runes of the first
// string are of category 1, the runes of the second string of category 2, and
// so on. A string consisting of a single rune defines a loner category.
type Categories []string

// Cat is part of interface RuneCategorizer.
func (c Categories) Cat(r rune) (CatCode, bool) {
	for i, s := range c {
		if strings.ContainsRune(s, r) {
			return CatCode(i + 1), utf8.RuneCountInString(s) == 1
		}
	}
	return IllegalCatCode, true
}

// CategoryFunc is an adapter to use ordinary functions as categorizers.
type CategoryFunc func(r rune) (CatCode, bool)

// Cat calls f(r).
func (f CategoryFunc) Cat(r rune) (CatCode, bool) {
	return f(r)
}

// --- Category sequence reader ----------------------------------------------

// CatSeqReader reads category sequences from a rune reader.
type CatSeqReader struct {
	isEof      bool
	next       rune
	start, end uint64 // as bytes index
	reader     io.RuneReader
	writer     bytes.Buffer
}

// NewCatSeqReader creates a category sequence reader.
func NewCatSeqReader(r io.RuneReader) *CatSeqReader {
	return &CatSeqReader{reader: r}
}

// Next reads the next sequence of runes of equal category. The runes are
// appended to the output, see OutputString. At the end of input Next returns
// io.EOF.
func (rs *CatSeqReader) Next(rc RuneCategorizer) (csq CatSeq, err error) {
	var r rune
	r, err = rs.lookahead()
	if err != nil && err != io.EOF {
		return csq, fmt.Errorf("scanner cannot read sequence: %w", err)
	} else if err == io.EOF {
		return csq, io.EOF
	}
	var isLoner bool
	csq.Cat, isLoner = rc.Cat(r)
	if isLoner {
		rs.match(r)
		csq.Length = 1
		return csq, nil
	}
	for cc := csq.Cat; cc == csq.Cat; cc, _ = rc.Cat(r) {
		rs.match(r)
		csq.Length++
		if r, err = rs.lookahead(); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
	}
	return
}

// OutputString returns the runes matched since the last call to ResetOutput.
func (rs *CatSeqReader) OutputString() string {
	return rs.writer.String()
}

// ResetOutput clears the output and starts a new span.
func (rs *CatSeqReader) ResetOutput() {
	rs.writer.Reset()
	rs.start = rs.end
}

// Span returns the byte positions of the current output.
func (rs *CatSeqReader) Span() pcomb.Span {
	return pcomb.Span{rs.start, rs.end}
}

func (rs *CatSeqReader) lookahead() (rune, error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.next != 0 {
		return rs.next, nil
	}
	r, _, err := rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, err
	}
	rs.next = r
	return r, nil
}

func (rs *CatSeqReader) match(r rune) {
	rs.writer.WriteRune(r)
	rs.end += uint64(utf8.RuneLen(r))
	rs.next = 0
}

// --- Category tokenizer ----------------------------------------------------

// CatTokenizer is a tokenizer producing a token for every category sequence.
// Create one with CategoryTokenizer.
type CatTokenizer struct {
	reader *CatSeqReader
	cats   RuneCategorizer
	skip   map[CatCode]bool
	Error  func(error)
}

var _ Tokenizer = (*CatTokenizer)(nil)

// CategoryTokenizer creates a tokenizer for input, grouping runes with
// categorizer rc. Sequences of categories in skip (e.g. whitespace) are not
// reported as tokens.
func CategoryTokenizer(input io.Reader, rc RuneCategorizer, skip ...CatCode) *CatTokenizer {
	t := &CatTokenizer{
		reader: NewCatSeqReader(bufio.NewReader(input)),
		cats:   rc,
		skip:   make(map[CatCode]bool, len(skip)),
		Error:  logError,
	}
	for _, c := range skip {
		t.skip[c] = true
	}
	return t
}

// SetErrorHandler sets an error handler for the tokenizer.
func (t *CatTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. Token types are the category
// codes of the sequences.
func (t *CatTokenizer) NextToken() pcomb.Token {
	for {
		t.reader.ResetOutput()
		csq, err := t.reader.Next(t.cats)
		if err == io.EOF {
			pos := t.reader.Span().From()
			return MakeDefaultToken(EOF, "", pcomb.Span{pos, pos})
		} else if err != nil {
			t.Error(err)
			pos := t.reader.Span().From()
			return MakeDefaultToken(EOF, "", pcomb.Span{pos, pos})
		}
		if t.skip[csq.Cat] {
			continue
		}
		if csq.Cat == IllegalCatCode {
			t.Error(fmt.Errorf("illegal character %q at position %d",
				t.reader.OutputString(), t.reader.Span().From()))
		}
		return MakeDefaultToken(pcomb.TokType(csq.Cat), t.reader.OutputString(), t.reader.Span())
	}
}
