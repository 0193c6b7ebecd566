package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newSyncCmd() *cobra.Command {
	var reload bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Save now (local + cloud mirror), or reload preferring cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			if reload {
				// openApp already loaded cloud-first; just report where from.
				fmt.Fprintf(cmd.OutOrStdout(), "%s level %d, %d XP, bank %d min\n",
					ui.Good.Render(ui.IconLoad+" Reloaded:"),
					a.svc.State().Player.Level, a.svc.State().Player.XP, a.svc.State().Player.MinutesBank)
				return nil
			}

			a.svc.TouchLastOpened()
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconSave+" Saved:"), ui.Muted.Render(a.store.LocalPath()))
			if cloud := a.store.CloudPath(); cloud != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconSave+" Mirrored:"), ui.Muted.Render(cloud))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No cloud mirror on this system."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reload, "reload", false, "Reload the save instead of writing it")

	return cmd
}
