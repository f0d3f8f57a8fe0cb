package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// printResults displays interpretations as a tree, with the input as root.
func printResults(input string, items []interpretation) {
	if len(items) == 0 {
		pterm.Error.Println("no interpretation for " + strconv.Quote(input))
		return
	}
	root := pterm.NewTreeFromLeveledList(leveledResults(input, items))
	pterm.DefaultTree.WithRoot(root).Render()
	pterm.Info.Println(fmt.Sprintf("%s interpretation(s)", humanize.Comma(int64(len(items)))))
}

func leveledResults(input string, items []interpretation) pterm.LeveledList {
	ll := pterm.LeveledList{{Level: 0, Text: strconv.Quote(input)}}
	for i, item := range items {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("#%d  %s", i+1, item.value),
		})
		rest := "complete"
		if item.rest != "" {
			rest = "rest " + strconv.Quote(item.rest)
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: 2,
			Text:  rest,
		})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}
