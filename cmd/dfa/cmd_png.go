package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/dfakit/pkg/dfafile"
)

func newPNGCmd() *cobra.Command {
	var (
		output string
		title  string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "png <file>",
		Short: "Render the automaton diagram to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, def, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}

			opts := dfafile.DefaultPNGOptions()
			opts.Width = width
			opts.Height = height
			if title != "" {
				opts.Title = title
			} else {
				opts.Title = def.Name
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			return dfafile.RenderPNG(f, a, opts)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path")
	cmd.Flags().StringVarP(&title, "title", "t", "", "diagram title")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.MarkFlagRequired("output")
	return cmd
}
