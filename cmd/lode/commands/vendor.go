package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVendorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendor",
		Short: "Materialize remote dependencies into a local directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("output")
			return c.app.Vendor(cmd.Context(), dir, options(cmd))
		},
	}
	cmd.Flags().StringP("output", "o", "vendor", "Directory to write vendored modules into")
	return cmd
}
