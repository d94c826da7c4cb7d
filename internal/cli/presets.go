package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/imposition"
)

// presetsCommand lists the quick-select lengths and the fixed gutter.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List quick-select page and document lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes := make([]string, len(imposition.Kinds))
			for i, k := range imposition.Kinds {
				schemes[i] = k.String()
			}

			printKeyValue("Pages", imposition.FormatList(c.Config.Presets.PageLengths))
			printKeyValue("Documents", imposition.FormatList(c.Config.Presets.DocLengths))
			printKeyValue("Schemes", strings.Join(schemes, ", "))
			printKeyValue("Gutter", formatLength(imposition.GutterSize)+" (fixed)")
			return nil
		},
	}
}
