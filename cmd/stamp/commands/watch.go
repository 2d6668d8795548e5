package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/adapters/watcher"
	"go.trai.ch/stamp/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Update documents as they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ConfigOptions: configOptions(cmd),
				Debounce:      debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period before changed documents are processed")
	return cmd
}
