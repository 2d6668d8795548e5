package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [paths...]",
		Short: "Report what run would do for each document",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Status(cmd.Context(), args, app.StatusOptions{
				ConfigOptions: configOptions(cmd),
				Force:         force,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Report as if run was forced")
	return cmd
}
