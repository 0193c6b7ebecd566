package root

import (
	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			return tui.RunDashboard(a.svc, a.store, cmd.OutOrStdout())
		},
	}

	return cmd
}
