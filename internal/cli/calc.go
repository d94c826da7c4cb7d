package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/pipeline"
	"github.com/matzehuels/scoreline/pkg/render"
)

// calcCommand creates the calc command, which prints a layout summary.
func (c *CLI) calcCommand() *cobra.Command {
	var (
		in      inputFlags
		asJSON  bool
		output  string
		noStrip bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate document count, start positions and scores",
		Example: `  scoreline calc --page 12 --doc 3.625 --scheme trifold
  scoreline calc -p 26 -d 8.5 -s custom --offsets "2.75, 5.5"
  scoreline calc -p 12 -d 4 --json -o layout.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := in.options(cmd, c.Config.Defaults)
			l, err := pipeline.NewRunner(nil, nil, c.Logger).Calculate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := render.RenderJSON(l)
				if err != nil {
					return err
				}
				if output == "" {
					_, err = os.Stdout.Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printSuccess("Wrote layout")
				printFile(output)
				return nil
			}

			printLayout(l)
			if !noStrip {
				printNewline()
				printStrip(l, defaultColumns)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to a file instead of stdout (with --json)")
	cmd.Flags().BoolVar(&noStrip, "no-preview", false, "skip the terminal preview strip")

	return cmd
}
