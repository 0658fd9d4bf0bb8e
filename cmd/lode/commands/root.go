// Package commands implements the CLI commands for the lode module manager.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/build"
)

// CLI represents the command line interface for lode.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lode",
		Short:         "A dependency manager for ES modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("reload", false, "Refetch every remote module, bypassing the cache")
	rootCmd.PersistentFlags().StringSlice("reload-one", nil, "Refetch only the named specifiers")
	rootCmd.PersistentFlags().Bool("cached-only", false, "Forbid network access; fail on uncached modules")
	rootCmd.PersistentFlags().Bool("frozen", false, "Fail on any dependency missing from the lock file")
	rootCmd.PersistentFlags().Bool("no-lock", false, "Disable lock file verification")
	rootCmd.PersistentFlags().String("lock", "", "Use the given lock file path instead of the configured one")
	rootCmd.PersistentFlags().Bool("lock-write", false, "Record resolved module hashes instead of verifying them")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVendorCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// options assembles app options from the persistent flags.
func options(cmd *cobra.Command) app.Options {
	reload, _ := cmd.Flags().GetBool("reload")
	targets, _ := cmd.Flags().GetStringSlice("reload-one")
	cachedOnly, _ := cmd.Flags().GetBool("cached-only")
	frozen, _ := cmd.Flags().GetBool("frozen")
	noLock, _ := cmd.Flags().GetBool("no-lock")
	lockPath, _ := cmd.Flags().GetString("lock")
	lockWrite, _ := cmd.Flags().GetBool("lock-write")

	return app.Options{
		Reload:        reload,
		ReloadTargets: targets,
		CachedOnly:    cachedOnly,
		Frozen:        frozen,
		NoLock:        noLock,
		LockPath:      lockPath,
		LockWrite:     lockWrite,
	}
}
