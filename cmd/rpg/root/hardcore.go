package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newHardcoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hardcore",
		Short: "Enable hardcore mode permanently (+25% task XP)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			enabled, err := a.svc.EnableHardcore()
			if err != nil {
				return err
			}
			if !enabled {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Hardcore mode is already on. There is no way back."))
				return nil
			}
			a.save(cmd)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconSkull+" Hardcore mode enabled — permanently."))
			return nil
		},
	}
}
