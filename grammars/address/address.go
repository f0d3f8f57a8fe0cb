package address

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/eager"
	"github.com/npillmayer/pcomb/match"
)

// Address is a parsed postal address.
type Address struct {
	Person Person
	Street Street
	City   City
}

// Person is the addressee. Title is nil for addressees without a title.
type Person struct {
	Title     *string
	FirstName string
	LastName  string
}

// Street is a street name with a house number.
type Street struct {
	Name   string
	Number int64
}

// City is a city name with a zip code.
type City struct {
	Name    string
	ZipCode int64
}

func (a Address) String() string {
	prefix := ""
	if a.Person.Title != nil {
		prefix = *a.Person.Title + " "
	}
	return fmt.Sprintf("%s%s %s, %s %d, %d %s", prefix, a.Person.FirstName, a.Person.LastName,
		a.Street.Name, a.Street.Number, a.City.ZipCode, a.City.Name)
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// word matches a run of non-whitespace runes and skips blanks following it.
var word = match.StringParser(func(r rune) bool {
	return !unicode.IsSpace(r)
}, match.SkipAfter(isBlank))

var eol = match.Exactly("\n")

// title is ambiguous: a first word may or may not be a title.
var title = pcomb.Or(
	pcomb.Map(word, func(w string) *string { return &w }),
	pcomb.Success[pcomb.Text, *string](nil),
)

func person() pcomb.Parser[pcomb.Text, Person] {
	return pcomb.Named("Person", func() pcomb.Parser[pcomb.Text, Person] {
		return pcomb.Map(pcomb.Seq4(title, word, word, eol),
			func(t pcomb.Tuple4[*string, string, string, string]) Person {
				return Person{Title: t.V1, FirstName: t.V2, LastName: t.V3}
			})
	})
}

func street() pcomb.Parser[pcomb.Text, Street] {
	return pcomb.Named("Street", func() pcomb.Parser[pcomb.Text, Street] {
		return pcomb.Map(pcomb.Seq3(word, eager.Int(), eol),
			func(t pcomb.Tuple3[string, int64, string]) Street {
				return Street{Name: t.V1, Number: t.V2}
			})
	})
}

func city() pcomb.Parser[pcomb.Text, City] {
	return pcomb.Named("City", func() pcomb.Parser[pcomb.Text, City] {
		return pcomb.Map(pcomb.Seq4(eager.Int(), match.Exactly(" "), word, eol),
			func(t pcomb.Tuple4[int64, string, string, string]) City {
				return City{Name: t.V3, ZipCode: t.V1}
			})
	})
}

// Grammar returns a parser for postal addresses.
func Grammar() pcomb.Parser[pcomb.Text, Address] {
	return pcomb.Named("Address", func() pcomb.Parser[pcomb.Text, Address] {
		return pcomb.Map(pcomb.Seq3(person(), street(), city()),
			func(t pcomb.Tuple3[Person, Street, City]) Address {
				return Address{Person: t.V1, Street: t.V2, City: t.V3}
			})
	})
}

// Parse returns all interpretations of input as a postal address.
func Parse(input string) pcomb.Results[pcomb.Text, Address] {
	rs := pcomb.ParseString(Grammar(), input)
	tracer().Debugf("%d interpretations as an address", len(rs))
	return rs
}
