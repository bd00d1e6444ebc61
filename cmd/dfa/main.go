// Command dfa is a CLI for building, inspecting and executing
// deterministic finite automata defined in JSON or YAML files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/dfakit/pkg/dfa"
	"github.com/ha1tch/dfakit/pkg/dfafile"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "dfa",
		Short:         "Deterministic finite automaton toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newValidateCmd(),
		newInfoCmd(),
		newRunCmd(),
		newDotCmd(),
		newPNGCmd(),
		newStepCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAutomaton reads a definition file and builds the validated
// automaton from it.
func loadAutomaton(path string) (*dfa.Automaton, *dfafile.Definition, error) {
	def, err := dfafile.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	a, err := def.Automaton()
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", path, err)
	}
	return a, def, nil
}

// splitInput turns the CLI input argument into symbols: single runes
// by default, or sep-delimited tokens for multi-character alphabets.
func splitInput(input, sep string) []dfa.Symbol {
	if sep == "" {
		return dfa.SplitSymbols(input)
	}
	if input == "" {
		return nil
	}
	tokens := strings.Split(input, sep)
	symbols := make([]dfa.Symbol, 0, len(tokens))
	for _, tok := range tokens {
		symbols = append(symbols, dfa.Symbol(tok))
	}
	return symbols
}
