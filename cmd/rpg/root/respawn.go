package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newRespawnCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "respawn",
		Short: "Reset the save to defaults (keeps only the save version)",
		Long: `Respawn wipes the save back to defaults: level, XP, streak, minute bank,
task log, quests and achievements. Only the save format version survives.

After a game over (7+ days of inactivity) this is the only action left.
On a living save, pass --force to confirm the reset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			if !a.svc.State().Meta.Dead && !force {
				return errors.New("save is still alive; pass --force to reset anyway")
			}

			a.svc.Respawn()
			a.save(cmd)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconRespawn+" Respawned. Back to level 1."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reset a living save")

	return cmd
}
