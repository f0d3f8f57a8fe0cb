package address

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const mustermann = "Herr Max Mustermann\t\nStrasseOhneLeerzeichen 42\n12345 KeineLeerzeichenStadt\t\n"

func TestAddress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	rs := Parse(mustermann)
	if len(rs) != 1 {
		t.Fatalf("Expected exactly 1 interpretation, have %d: %v", len(rs), rs)
	}
	a := rs[0].Value
	if a.Person.Title == nil || *a.Person.Title != "Herr" {
		t.Errorf("Expected title to be 'Herr', is %v", a.Person.Title)
	}
	if a.Person.FirstName != "Max" || a.Person.LastName != "Mustermann" {
		t.Errorf("Expected name to be 'Max Mustermann', is %q %q", a.Person.FirstName, a.Person.LastName)
	}
	if a.Street.Name != "StrasseOhneLeerzeichen" || a.Street.Number != 42 {
		t.Errorf("Expected street to be 'StrasseOhneLeerzeichen 42', is %v", a.Street)
	}
	if a.City.ZipCode != 12345 || a.City.Name != "KeineLeerzeichenStadt" {
		t.Errorf("Expected city to be '12345 KeineLeerzeichenStadt', is %v", a.City)
	}
	if rs[0].Tail.Len() != 0 {
		t.Errorf("Expected address to consume all input, rest is %q", rs[0].Tail)
	}
}

func TestAddressWithoutTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	rs := Parse("Max Mustermann\nHauptstrasse 1\n80331 München\n")
	if len(rs) != 1 {
		t.Fatalf("Expected exactly 1 interpretation, have %d: %v", len(rs), rs)
	}
	if rs[0].Value.Person.Title != nil {
		t.Errorf("Expected no title, is %q", *rs[0].Value.Person.Title)
	}
	if s := rs[0].Value.String(); s != "Max Mustermann, Hauptstrasse 1, 80331 München" {
		t.Errorf("Unexpected address %q", s)
	}
}

func TestNoAddress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	if rs := Parse("Bla bla"); len(rs) != 0 {
		t.Errorf("Expected 'Bla bla' not to be an address, is %v", rs)
	}
}
