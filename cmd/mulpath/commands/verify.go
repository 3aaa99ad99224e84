package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mulpath/internal/app"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/engine/integrity"
	"go.trai.ch/mulpath/internal/ui/style"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [KIND...]",
		Short: "Check assets against their recorded digests",
		Long: "Check assets against their recorded digests.\n\n" +
			"A kind names an asset without its extension, e.g. \"map0\" for map0.mul.\n" +
			"The command fails when any kind does not match.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hashDir, _ := cmd.Flags().GetString("hash-dir")
			all, _ := cmd.Flags().GetBool("all")

			if len(args) == 0 && !all {
				_ = cmd.Help()
				return nil
			}

			results, err := c.app.Verify(cmd.Context(), args, app.VerifyOptions{
				HashDir: hashDir,
				All:     all,
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			changed := false
			for _, res := range results {
				if !res.Unchanged() {
					changed = true
				}
				_, _ = fmt.Fprintf(p.out, "%s %s\n", p.icon(outcomeIcon(res.Outcome)), integrity.Describe(res))
			}

			if changed {
				return domain.ErrAssetsChanged
			}
			return nil
		},
	}

	cmd.Flags().String("hash-dir", "", "Directory holding sidecar digest files")
	cmd.Flags().BoolP("all", "a", false, "Verify every kind recorded in the hash directory")

	return cmd
}

func outcomeIcon(o domain.VerifyOutcome) string {
	switch o {
	case domain.VerifiedMatch:
		return style.Check
	case domain.VerifiedMismatch:
		return style.Cross
	default:
		return style.Warning
	}
}
