package main

import (
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show automaton information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, def, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}

			if def.Name != "" {
				cmd.Printf("Name:        %s\n", def.Name)
			}
			cmd.Printf("States:      %d %s\n", a.States().Size(), a.States())
			cmd.Printf("Alphabet:    %d %v\n", a.Alphabet().Size(), a.Alphabet().Symbols())
			cmd.Printf("Initial:     %s\n", a.InitialState())
			cmd.Printf("Final:       %s\n", a.FinalStates())

			defined := a.Transitions().Size()
			total := a.States().Size() * a.Alphabet().Size()
			cmd.Printf("Transitions: %d of %d defined\n", defined, total)
			cmd.Printf("Fingerprint: %016x\n", a.Fingerprint())
			return nil
		},
	}
}
