package main

import (
	"github.com/spf13/cobra"

	"github.com/ha1tch/dfakit/pkg/dfa"
)

func newRunCmd() *cobra.Command {
	var (
		compiled bool
		trace    bool
		sep      string
	)
	cmd := &cobra.Command{
		Use:   "run <file> <input>",
		Short: "Execute an automaton over an input string",
		Long: `Execute an automaton over an input string.

The input is split into single-character symbols unless --sep is
given, in which case it is split on the separator (for automata with
multi-character symbols). --compiled uses the table-driven fast path,
which records no transition history.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			input := splitInput(args[1], sep)

			if compiled {
				final, accepted, err := a.Compiled().Run(input)
				if err != nil {
					return err
				}
				printVerdict(cmd, final, accepted, len(input))
				return nil
			}

			result, err := a.Execute(input)
			if err != nil {
				return err
			}
			if trace {
				for i, step := range result.Steps {
					cmd.Printf("  %d: %s --%s--> %s\n", i+1, step.From, step.Input, step.To)
				}
			}
			printVerdict(cmd, result.FinalState, result.Accepted, len(result.Steps))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compiled, "compiled", false, "use the compiled fast path (no trace)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the transition history")
	cmd.Flags().StringVar(&sep, "sep", "", "split the input on this separator instead of per character")
	cmd.MarkFlagsMutuallyExclusive("compiled", "trace")
	return cmd
}

func printVerdict(cmd *cobra.Command, final dfa.State, accepted bool, steps int) {
	verdict := "REJECTED"
	if accepted {
		verdict = "ACCEPTED"
	}
	cmd.Printf("Final state: %s (%d transitions)\n", final, steps)
	cmd.Println(verdict)
}
