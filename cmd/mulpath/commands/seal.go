package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal KIND...",
		Short: "Record the current digest of assets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			hashDir, _ := cmd.Flags().GetString("hash-dir")
			return c.app.Seal(args, hashDir)
		},
	}

	cmd.Flags().String("hash-dir", "", "Directory holding sidecar digest files")

	return cmd
}
