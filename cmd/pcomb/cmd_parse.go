package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [input...]",
		Short: "Parse input and print all interpretations",
		Long: `Parse input with the selected grammar and print every interpretation,
together with the remaining input.

Arguments are joined by blanks to form the input. If no argument is given,
the input is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				source, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(source)
			}
			tracer().Infof("Input is %q", input)
			items, err := interpret(s.grammar, input, s.opts, false)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			printResults(input, items)
			return nil
		},
	}
}
