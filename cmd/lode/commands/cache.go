package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache [specifiers...]",
		Short: "Resolve and cache modules, verifying lock file integrity",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Cache(cmd.Context(), args, options(cmd))
		},
	}
}
