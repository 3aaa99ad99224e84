package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/ui/style"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Print the path of each named asset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout())

			failed := 0
			for _, name := range args {
				path, err := c.app.Locate(name)
				if err != nil {
					failed++
					_, _ = fmt.Fprintf(p.out, "%s %-*s %s\n", p.icon(style.Cross), nameWidth, name, p.dim(describeLocateError(err)))
					continue
				}
				_, _ = fmt.Fprintf(p.out, "%s %-*s %s\n", p.icon(style.Check), nameWidth, name, path)
			}

			if failed > 0 {
				return domain.ErrAssetsUnavailable
			}
			return nil
		},
	}
}

// describeLocateError names the sentinel behind err without the attached detail.
func describeLocateError(err error) string {
	for _, sentinel := range []error{
		domain.ErrUnknownAsset,
		domain.ErrAssetAbsent,
		domain.ErrAssetMissing,
		domain.ErrAssetUnresolved,
		domain.ErrNotInitialized,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
