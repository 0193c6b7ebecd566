package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/engine"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Daily check-in to keep the streak alive",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			res, err := a.svc.CheckIn()
			if err != nil {
				return err
			}
			if res.Already {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already checked in today. Streak: "+fmt.Sprint(res.Streak)+" days"))
				return nil
			}
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconStreak+" Checked in!"),
				ui.Key.Render(fmt.Sprintf("Streak: %d days", res.Streak)))
			if res.Bonus {
				fmt.Fprintf(cmd.OutOrStdout(), "%s +%d XP, +%d min\n",
					ui.Gold.Render(ui.IconSparkle+" Streak bonus!"), engine.StreakBonusXP, engine.StreakBonusMinutes)
			}
			return nil
		},
	}

	return cmd
}
