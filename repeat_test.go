package pcomb

import (
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func joined(rs Results[Text, []string]) []string {
	var all []string
	for _, r := range rs {
		all = append(all, strings.Join(r.Value, "·")+"|"+r.Tail.String())
	}
	return all
}

func TestZeroOrMore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	rs := ParseString(ZeroOrMore(lit("a")), "aaab")
	if !rs.IsUnique() || len(rs[0].Value) != 3 || rs[0].Tail.String() != "b" {
		t.Errorf("Expected ([a a a] | b), is %v", rs)
	}
	rs = ParseString(ZeroOrMore(lit("a")), "bbb")
	if !rs.IsUnique() || len(rs[0].Value) != 0 || rs[0].Tail.Len() != 3 {
		t.Errorf("Expected empty repetition consuming nothing, is %v", rs)
	}
	if rs[0].Value == nil {
		t.Errorf("Expected empty repetition to be an empty slice, is nil")
	}
}

func TestZeroOrMoreForksThreads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	rs := ParseString(ZeroOrMore(Or(lit("a"), lit("aa"))), "aaa")
	expected := []string{"a·a·a|", "a·aa|", "aa·a|"}
	got := joined(rs)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d threads, is %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected thread #%d to be %q, is %q", i, expected[i], got[i])
		}
	}
}

func TestForkedThreadsDoNotShareValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	xy := Or(
		Map(lit("a"), func(string) string { return "x" }),
		Map(lit("a"), func(string) string { return "y" }),
	)
	all := joined(ParseString(ZeroOrMore(xy), "aaaa"))
	if len(all) != 16 {
		t.Fatalf("Expected 16 threads, have %d: %v", len(all), all)
	}
	sort.Strings(all)
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			t.Errorf("Expected every thread to be distinct, %q occurs twice", all[i])
		}
	}
	if all[0] != "x·x·x·x|" || all[15] != "y·y·y·y|" {
		t.Errorf("Expected threads from x·x·x·x to y·y·y·y, are %q … %q", all[0], all[15])
	}
}

// allocated returns the number of bytes allocated while running f.
func allocated(f func()) uint64 {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	f()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}

func TestRepetitionAllocatesLinearly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	as := ZeroOrMore(lit("a"))
	run := func(n int) uint64 {
		input := strings.Repeat("a", n)
		return allocated(func() {
			rs := ParseString(as, input)
			if !rs.IsUnique() || len(rs[0].Value) != n {
				t.Errorf("Expected a single repetition of %d items, is %d interpretations", n, len(rs))
			}
		})
	}
	small, large := run(2000), run(16000)
	t.Logf("allocated %d bytes for 2000 items, %d bytes for 16000 items", small, large)
	// 8 times the input, linear growth is about 8 times the bytes
	if large > 16*small {
		t.Errorf("Expected allocations to grow linearly, grew by factor %d", large/small)
	}
}

func TestRepetitionIsLocallyMaximal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	// The thread starting with 'a' cannot be extended by 'ab' nor by 'a',
	// so it is reported with tail "b". Thread "ab" consumes all input.
	rs := ParseString(ZeroOrMore(Or(lit("ab"), lit("a"))), "ab")
	got := joined(rs)
	if len(got) != 2 || got[0] != "ab|" || got[1] != "a|b" {
		t.Errorf("Expected [ab| a|b], is %v", got)
	}
	// Shorter repetitions of an extendable thread are not reported.
	rs = ParseString(ZeroOrMore(lit("a")), "aa")
	if !rs.IsUnique() {
		t.Errorf("Expected only the maximal repetition, is %v", joined(rs))
	}
}

func TestOneOrMore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	if rs := ParseString(OneOrMore(lit("a")), "bbb"); !rs.IsFailure() {
		t.Errorf("Expected OneOrMore to fail without a first match, is %v", rs)
	}
	rs := ParseString(OneOrMore(lit("a")), "aab")
	if !rs.IsUnique() || len(rs[0].Value) != 2 || rs[0].Tail.String() != "b" {
		t.Errorf("Expected ([a a] | b), is %v", rs)
	}
}

func TestRepeatWithSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	list := Repeat(lit("x"), lit(","))
	rs := ParseString(list, "x,x,x")
	if !rs.IsSuccess() || len(rs[0].Value) != 3 {
		t.Errorf("Expected 3 list items, is %v", rs)
	}
	rs = ParseString(list, "x,x,")
	if !rs.IsUnique() || len(rs[0].Value) != 2 || rs[0].Tail.String() != "," {
		t.Errorf("Expected dangling separator to remain unconsumed, is %v", rs)
	}
	rs = ParseString(list, ",x")
	if !rs.IsFailure() {
		t.Errorf("Expected list to fail on leading separator, is %v", rs)
	}
}

func TestRepeatAmbiguousSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	// separator ',' | ',,' with item 'x' or ',x' leads to forks
	item := Or(lit("x"), lit(",x"))
	sep := Or(lit(","), lit(",,"))
	rs := ParseString(Repeat(item, sep), "x,,x")
	got := joined(rs)
	if len(got) != 2 || got[0] != "x·,x|" || got[1] != "x·x|" {
		t.Errorf("Expected [x·,x| x·x|], is %v", got)
	}
}

func TestStalledRepetitionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	rs := ParseString(ZeroOrMore(Success[Text]("ε")), "ab")
	if !rs.IsUnique() || len(rs[0].Value) != 1 || rs[0].Tail.Len() != 2 {
		t.Errorf("Expected stalled repetition to stop after the first match, is %v", rs)
	}
}

func TestStalledRepetitionPanicsIfConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.core")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"panic-on-stalled-repetition": true})
	defer gconf.Initialize(testconfig.Conf{})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected stalled repetition to panic")
		}
	}()
	ParseString(ZeroOrMore(Success[Text]("ε")), "ab")
}
