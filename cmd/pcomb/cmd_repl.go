package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newREPLCmd(s *settings) *cobra.Command {
	var initf string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Long: `Start an interactive session. Every line is parsed with the current
grammar and all interpretations are printed. For the address and matrix
grammars, line breaks and tabs may be written as \n and \t.

Lines starting with a colon are commands:

    :g <grammar>   switch to another grammar
    :complete      toggle showing complete interpretations only
    :dedup         toggle removal of duplicate interpretations
    :q             quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := readline.New("pcomb> ")
			if err != nil {
				return fmt.Errorf("repl: %w", err)
			}
			defer repl.Close()
			intp := &Intp{
				grammar: s.grammar,
				opts:    s.opts,
				repl:    repl,
			}
			pterm.Info.Println("Welcome to the pcomb REPL, grammar is " + intp.grammar)
			tracer().Infof("Quit with <ctrl>D")
			intp.loadInitFile(initf)
			intp.REPL()
			return nil
		},
	}
	cmd.Flags().StringVar(&initf, "init", "", "file with lines to parse before going interactive")
	return cmd
}

// Intp is our interpreter object.
type Intp struct {
	grammar string
	opts    options
	repl    *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: %v", lineno, err)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

// Eval executes a command or parses a line of input.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		items, err := interpret(intp.grammar, line, intp.opts, true)
		if err != nil {
			return false, err
		}
		printResults(line, items)
		return false, nil
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":q", ":quit":
		return true, nil
	case ":g", ":grammar":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :g <grammar>, with grammar one of %s", grammarNames())
		}
		if _, err := lookupGrammar(args[1]); err != nil {
			return false, err
		}
		intp.grammar = args[1]
		pterm.Info.Println("grammar is " + intp.grammar)
	case ":complete":
		intp.opts.complete = !intp.opts.complete
		pterm.Info.Println(fmt.Sprintf("complete interpretations only: %v", intp.opts.complete))
	case ":dedup":
		intp.opts.dedup = !intp.opts.dedup
		pterm.Info.Println(fmt.Sprintf("remove duplicates: %v", intp.opts.dedup))
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}
