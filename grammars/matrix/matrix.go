package matrix

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/eager"
	"github.com/npillmayer/pcomb/match"
	"golang.org/x/text/language"
)

// Matrix is a dense matrix of floats in row-major order.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// At returns the element at row i and column j.
func (m Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

func (m Matrix) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i := 0; i < m.Rows; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		for j := 0; j < m.Cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
	}
	b.WriteString("]")
	return b.String()
}

var ws = match.Runes(unicode.IsSpace)

// Grammar returns a parser for matrix literals, optionally surrounded by
// whitespace.
func Grammar() pcomb.Parser[pcomb.Text, Matrix] {
	number := eager.LocalizedFloat(language.AmericanEnglish)
	line := pcomb.Repeat(number, match.RegexString(`[ \t\n\r]*,[ \t\n\r]*`))
	lines := pcomb.OrSuccess[pcomb.Text, [][]float64](
		pcomb.Repeat(line, match.RegexString(`[ \t\n\r]*;[ \t\n\r]*`)),
		nil)
	literal := pcomb.Seq5(ws, match.Exactly("["), lines, match.Exactly("]"), ws)
	return pcomb.CompactMap(literal, func(t pcomb.Tuple5[string, string, [][]float64, string, string]) (Matrix, bool) {
		return fromLines(t.V3)
	})
}

// fromLines creates a matrix from its rows. It reports false for ragged rows.
func fromLines(lines [][]float64) (Matrix, bool) {
	if len(lines) == 0 {
		return Matrix{}, true
	}
	m := Matrix{Rows: len(lines), Cols: len(lines[0])}
	for _, l := range lines {
		if len(l) != m.Cols {
			tracer().Debugf("rejecting ragged matrix: row lengths %d and %d", m.Cols, len(l))
			return Matrix{}, false
		}
		m.Data = append(m.Data, l...)
	}
	return m, true
}

// Parse parses a matrix literal. It is an error if input is not a single
// matrix.
func Parse(input string) (Matrix, error) {
	rs := pcomb.ParseString(Grammar(), input).RemoveIncomplete()
	if rs.IsFailure() {
		return Matrix{}, fmt.Errorf("not a matrix literal: %.40q", input)
	}
	return rs[0].Value, nil
}
