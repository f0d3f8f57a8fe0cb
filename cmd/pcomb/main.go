package main

import (
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// settings are the flags common to all sub-commands.
type settings struct {
	grammar      string
	traceLevel   string
	panicOnStall bool
	opts         options
}

func main() {
	initDisplay()
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:   "pcomb",
		Short: "Run ambiguous example grammars on input",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := lookupGrammar(s.grammar); err != nil {
				return err
			}
			configure(s)
			return nil
		},
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&s.grammar, "grammar", "g", "arith", "grammar to use "+grammarNames())
	flags.StringVar(&s.traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")
	flags.BoolVar(&s.opts.complete, "complete", false, "show complete interpretations only")
	flags.BoolVar(&s.opts.dedup, "dedup", false, "remove duplicate interpretations")
	flags.BoolVar(&s.panicOnStall, "panic-on-stall", false, "panic on repetitions which do not consume input")

	rootCmd.AddCommand(newParseCmd(s))
	rootCmd.AddCommand(newREPLCmd(s))

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// configure sets up tracing and the global configuration from the
// command line flags.
func configure(s *settings) {
	adapter := gologadapter.GetAdapter()
	trace := adapter()
	trace.SetTraceLevel(tracing.TraceLevelFromString(s.traceLevel))
	tracing.SetTraceSelector(selector{tracer: trace})
	//
	// a plain key-value configuration is all we need
	gconf.Initialize(testconfig.Conf{
		"trace":                       s.traceLevel,
		"panic-on-stalled-repetition": s.panicOnStall,
	})
	tracer().Infof("Trace level is %s", s.traceLevel)
}

// selector uses one tracer for all trace keys.
type selector struct {
	tracer tracing.Trace
}

func (sel selector) Select(string) tracing.Trace {
	return sel.tracer
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
