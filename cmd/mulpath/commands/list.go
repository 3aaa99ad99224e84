package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every known asset and where it resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			missing, _ := cmd.Flags().GetBool("missing")
			p := newPrinter(cmd.OutOrStdout())

			for _, e := range c.app.Entries() {
				if missing && e.Resolution.IsResolved() {
					continue
				}
				_, _ = fmt.Fprintln(p.out, p.entryLine(e))
			}
			return nil
		},
	}

	cmd.Flags().BoolP("missing", "m", false, "Only list assets that did not resolve")

	return cmd
}

func (p *printer) entryLine(e domain.CatalogEntry) string {
	name := e.Name.String()

	switch e.Resolution.State {
	case domain.Resolved:
		return fmt.Sprintf("%s %-*s %s", p.icon(style.Check), nameWidth, name, e.Resolution.Path)
	case domain.Absent:
		return fmt.Sprintf("%s %-*s %s", p.icon(style.Cross), nameWidth, name, p.dim(e.Resolution.State.String()))
	default:
		return fmt.Sprintf("%s %-*s %s", p.icon(style.Circle), nameWidth, name, p.dim(e.Resolution.State.String()))
	}
}
