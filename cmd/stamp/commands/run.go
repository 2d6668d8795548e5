package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Update changed documents, or all documents under the content root",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ConfigOptions: configOptions(cmd),
				Force:         force,
				DryRun:        dryRun,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rewrite the timestamp even when nothing changed")
	cmd.Flags().Bool("dry-run", false, "Show what would change without writing anything")
	return cmd
}
