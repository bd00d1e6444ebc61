package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/dfakit/pkg/dfafile"
)

func newDotCmd() *cobra.Command {
	var output, title string
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Generate Graphviz DOT output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, def, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			if title == "" {
				if def.Name != "" {
					title = def.Name
				} else {
					title = fmt.Sprintf("DFA: %d states", a.States().Size())
				}
			}

			dot := dfafile.GenerateDOT(a, title)
			if output == "" {
				cmd.Print(dot)
				return nil
			}
			return os.WriteFile(output, []byte(dot), 0644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVarP(&title, "title", "t", "", "diagram title")
	return cmd
}
