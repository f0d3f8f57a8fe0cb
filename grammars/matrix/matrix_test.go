package matrix

import (
	"reflect"
	"testing"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	rs := pcomb.ParseString(Grammar(), "\n[1234.5, 654, 13;\n54345.25, 444, 123]\n")
	if len(rs) != 1 {
		t.Fatalf("Expected exactly 1 interpretation, have %d: %v", len(rs), rs)
	}
	expected := Matrix{Rows: 2, Cols: 3, Data: []float64{1234.5, 654, 13, 54345.25, 444, 123}}
	if !reflect.DeepEqual(rs[0].Value, expected) {
		t.Errorf("Expected %v, is %v", expected, rs[0].Value)
	}
	if rs[0].Tail.Len() != 0 {
		t.Errorf("Expected matrix to consume all input, rest is %q", rs[0].Tail)
	}
	if x := rs[0].Value.At(1, 0); x != 54345.25 {
		t.Errorf("Expected m[1,0] to be 54345.25, is %g", x)
	}
}

func TestRaggedMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	if rs := pcomb.ParseString(Grammar(), "[1, 2; 3]"); len(rs) != 0 {
		t.Errorf("Expected ragged matrix to be rejected, is %v", rs)
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.grammars")
	defer teardown()
	//
	m, err := Parse("[-1.5e2 ; 2]")
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows != 2 || m.Cols != 1 || m.String() != "[-150; 2]" {
		t.Errorf("Expected a 2×1 matrix [-150; 2], is %d×%d %v", m.Rows, m.Cols, m)
	}
	if m, err = Parse("[]"); err != nil || m.Rows != 0 {
		t.Errorf("Expected an empty matrix, is %v (error %v)", m, err)
	}
	for _, input := range []string{"[1, 2", "1, 2]", "[1,, 2]", "[a]"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Expected %q not to be a matrix", input)
		}
	}
}
