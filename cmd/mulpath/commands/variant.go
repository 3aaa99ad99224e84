package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mulpath/internal/ui/style"
)

func (c *CLI) newVariantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variant",
		Short: "Show the selected geometry of the overworld maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants, err := c.app.MapVariants()
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, v := range variants {
				_, _ = fmt.Fprintf(p.out, "%s map %d %-8s %dx%d %s\n",
					p.icon(style.Dot), v.MapID, v.Layout, v.Width, v.Height,
					p.dim(fmt.Sprintf("map%d.mul", v.FileIndex)))
			}
			return nil
		},
	}
}
