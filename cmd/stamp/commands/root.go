// Package commands implements the CLI commands for stamp.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
	"go.trai.ch/stamp/internal/build"
	"go.trai.ch/stamp/internal/core/domain"
)

// CLI represents the command line interface for stamp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, paths []string, opts app.RunOptions) error
	Status(ctx context.Context, paths []string, opts app.StatusOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Clean(ctx context.Context, opts app.ConfigOptions) error
	ConfigureLogging(jsonLog, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stamp",
		Short:         "Refresh the update timestamp of changed content documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so --version is declared without a shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	flags.StringP("root", "r", "", "Content root directory (overrides the configuration)")
	flags.String("cache", "", "Cache file path (overrides the configuration)")
	flags.String("identity", "", "Cache key derivation: basename or path")
	flags.String("hash", "", "Body digest: xxhash or md5")
	flags.IntP("workers", "w", 0, "Number of documents processed concurrently")
	flags.Bool("json-log", false, "Write logs as JSON lines")
	flags.BoolP("verbose", "v", false, "Log skipped and cache-only documents")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.ConfigureLogging(jsonLog, verbose)
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// configOptions reads the persistent flags shared by every command.
func configOptions(cmd *cobra.Command) app.ConfigOptions {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	cache, _ := cmd.Flags().GetString("cache")
	identity, _ := cmd.Flags().GetString("identity")
	hash, _ := cmd.Flags().GetString("hash")
	workers, _ := cmd.Flags().GetInt("workers")

	return app.ConfigOptions{
		ConfigPath: configPath,
		Root:       root,
		Cache:      cache,
		Identity:   identity,
		Hash:       hash,
		Workers:    workers,
	}
}
