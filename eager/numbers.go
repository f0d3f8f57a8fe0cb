package eager

import (
	"strconv"
	"strings"

	"github.com/npillmayer/pcomb"
	"golang.org/x/text/language"
)

// Integer converts text to int64. A leading sign is allowed.
func Integer() Strategy[pcomb.Text, int64] {
	return StrategyFunc[pcomb.Text, int64](func(prefix pcomb.Text) (int64, Verdict) {
		s := prefix.String()
		if s == "-" || s == "+" {
			return 0, Partial
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, Reject
		}
		return n, Accept
	})
}

// Unsigned converts text to uint64. Signs are not allowed.
func Unsigned() Strategy[pcomb.Text, uint64] {
	return Predicate(func(prefix pcomb.Text) (uint64, bool) {
		n, err := strconv.ParseUint(prefix.String(), 10, 64)
		return n, err == nil
	})
}

// Float converts text to float64. Accepted are decimal numbers with an
// optional sign, an optional fractional part and an optional exponent.
// Hexadecimal notation and the names of special values are not accepted.
func Float() Strategy[pcomb.Text, float64] {
	return StrategyFunc[pcomb.Text, float64](func(prefix pcomb.Text) (float64, Verdict) {
		return convertFloat(prefix.String())
	})
}

// Decimal converts text to float64 like Float does, using the decimal
// separator of a language. For languages writing a decimal comma, "3,5" is
// accepted and "3.5" is not. Digit grouping is not supported.
func Decimal(tag language.Tag) Strategy[pcomb.Text, float64] {
	if !usesDecimalComma(tag) {
		return Float()
	}
	return StrategyFunc[pcomb.Text, float64](func(prefix pcomb.Text) (float64, Verdict) {
		s := prefix.String()
		if strings.ContainsRune(s, '.') {
			return 0, Reject
		}
		return convertFloat(strings.Replace(s, ",", ".", 1))
	})
}

func convertFloat(s string) (float64, Verdict) {
	if !isDecimalFloat(s) {
		return 0, Reject
	}
	if partialFloat(s) {
		return 0, Partial
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, Reject
	}
	return f, Accept
}

// isDecimalFloat checks for the characters of a decimal float in their
// possible positions, without checking for completeness.
func isDecimalFloat(s string) bool {
	dot, exp := false, false
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-':
			if i > 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return false
			}
		case c == '.':
			if dot || exp {
				return false
			}
			dot = true
		case c == 'e' || c == 'E':
			if exp || !hasDigit(s[:i]) {
				return false
			}
			exp = true
		default:
			return false
		}
	}
	return true
}

// partialFloat is true for prefixes which may be continued to a float.
func partialFloat(s string) bool {
	if !hasDigit(s) {
		return true // "", "-", ".", "-."
	}
	last := s[len(s)-1]
	return last == 'e' || last == 'E' || last == '+' || last == '-'
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// Languages writing a decimal comma. The first entry is the fallback.
var decimalCommaMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Danish,
	language.Swedish,
	language.Norwegian,
	language.Finnish,
	language.Polish,
	language.Czech,
	language.Slovak,
	language.Russian,
	language.Ukrainian,
	language.Turkish,
	language.Greek,
	language.Hungarian,
	language.Romanian,
})

func usesDecimalComma(tag language.Tag) bool {
	_, index, confidence := decimalCommaMatcher.Match(tag)
	return confidence != language.No && index > 0
}

// --- Text parsers ----------------------------------------------------------

// Int matches the longest prefix of a text which is a decimal integer.
func Int() pcomb.Parser[pcomb.Text, int64] {
	return Max(Integer())
}

// Uint matches the longest prefix of a text which is an unsigned decimal
// integer.
func Uint() pcomb.Parser[pcomb.Text, uint64] {
	return Max(Unsigned())
}

// Float64 matches the longest prefix of a text which is a decimal float.
func Float64() pcomb.Parser[pcomb.Text, float64] {
	return Max(Float())
}

// LocalizedFloat matches the longest prefix of a text which is a decimal
// float, written with the decimal separator of a language.
func LocalizedFloat(tag language.Tag) pcomb.Parser[pcomb.Text, float64] {
	return Max(Decimal(tag))
}
