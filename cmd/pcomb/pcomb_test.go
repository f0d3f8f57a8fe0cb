package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInterpretArith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.cli")
	defer teardown()
	//
	items, err := interpret("arith", "1+2", options{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 interpretations of '1+2', have %d: %v", len(items), items)
	}
	items, _ = interpret("arith", "1+2", options{complete: true}, false)
	if len(items) != 1 || items[0].value != "3" || items[0].rest != "" {
		t.Errorf("Expected complete interpretation 3, is %v", items)
	}
}

func TestInterpretTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.cli")
	defer teardown()
	//
	items, err := interpret("arith-tokens", "(1+2)*3", options{complete: true, dedup: true}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].value != "9" {
		t.Errorf("Expected complete interpretation 9, is %v", items)
	}
	if _, err = interpret("arith-tokens", "1 ~ 2", options{}, false); err == nil {
		t.Errorf("Expected scanner error to be reported")
	}
}

func TestInterpretEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.cli")
	defer teardown()
	//
	line := `Max Mustermann\nHauptstrasse 1\n80331 München\n`
	items, err := interpret("address", line, options{complete: true}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Errorf("Expected interactive input to be unescaped, have %v", items)
	}
	if items, _ = interpret("address", line, options{complete: true}, false); len(items) != 0 {
		t.Errorf("Expected escapes to be left alone for non-interactive input, have %v", items)
	}
}

func TestUnknownGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.cli")
	defer teardown()
	//
	if _, err := interpret("cobol", "x", options{}, false); err == nil {
		t.Errorf("Expected unknown grammar to be an error")
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.cli")
	defer teardown()
	//
	intp := &Intp{grammar: "arith"}
	if quit, err := intp.Eval(":g json"); quit || err != nil || intp.grammar != "json" {
		t.Errorf("Expected grammar to switch to json, is %s (error %v)", intp.grammar, err)
	}
	if _, err := intp.Eval(":g cobol"); err == nil || intp.grammar != "json" {
		t.Errorf("Expected switch to unknown grammar to fail")
	}
	if _, err := intp.Eval(":complete"); err != nil || !intp.opts.complete {
		t.Errorf("Expected :complete to toggle option")
	}
	if _, err := intp.Eval(`{"a": [1, 2]}`); err != nil {
		t.Errorf("Expected JSON input to be parsed, got error %v", err)
	}
	if quit, _ := intp.Eval(":q"); !quit {
		t.Errorf("Expected :q to quit")
	}
}

func TestLeveledResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.cli")
	defer teardown()
	//
	ll := leveledResults("1+2", []interpretation{{value: "3"}, {value: "1", rest: "+2"}})
	if len(ll) != 5 {
		t.Fatalf("Expected 5 tree items, have %d", len(ll))
	}
	if ll[2].Text != "complete" || ll[4].Text != `rest "+2"` {
		t.Errorf("Unexpected rest items %q and %q", ll[2].Text, ll[4].Text)
	}
}
