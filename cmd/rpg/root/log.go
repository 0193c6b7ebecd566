package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newLogCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the journal (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			lines := a.svc.RecentLogs(n)
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No journal entries yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Journal"))
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(line))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 20, "Number of entries to show")

	return cmd
}
