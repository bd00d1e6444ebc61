package main

import (
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an automaton definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s: valid DFA with %d states, %d symbols, %d transitions\n",
				args[0], a.States().Size(), a.Alphabet().Size(), a.Transitions().Size())
			return nil
		},
	}
}
