package match

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/pcomb"
)

// Regex matches a prefix of a text against a regular expression (RE2
// syntax, see package regexp). The value is the matched text, followed by the
// texts of all capture groups, as returned by regexp.FindStringSubmatch.
//
// Regex panics if pattern does not compile.
func Regex(pattern string) pcomb.Parser[pcomb.Text, []string] {
	re := compileAnchored(pattern)
	return pcomb.ParserFunc[pcomb.Text, []string](func(input pcomb.Text) pcomb.Results[pcomb.Text, []string] {
		m := re.FindStringSubmatch(input.String())
		if m == nil {
			return nil
		}
		return pcomb.Results[pcomb.Text, []string]{{Value: m, Tail: input.Drop(len(m[0]))}}
	})
}

// RegexString is like Regex, but the value is the matched text only.
func RegexString(pattern string) pcomb.Parser[pcomb.Text, string] {
	re := compileAnchored(pattern)
	return pcomb.ParserFunc[pcomb.Text, string](func(input pcomb.Text) pcomb.Results[pcomb.Text, string] {
		loc := re.FindStringIndex(input.String())
		if loc == nil {
			return nil
		}
		return pcomb.Results[pcomb.Text, string]{{Value: input.Prefix(loc[1]).String(), Tail: input.Drop(loc[1])}}
	})
}

func compileAnchored(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		tracer().Errorf("invalid regular expression %q: %v", pattern, err)
		panic(fmt.Sprintf("match: invalid regular expression %q: %v", pattern, err))
	}
	return re
}
