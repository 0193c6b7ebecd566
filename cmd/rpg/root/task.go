package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/engine"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newTaskCmd() *cobra.Command {
	var diff string

	cmd := &cobra.Command{
		Use:   "task <title>",
		Short: "Complete a task and collect XP + play minutes",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			res, err := a.svc.CompleteTask(strings.Join(args, " "), d)
			if err != nil {
				return err
			}
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconTask+" Done"),
				res.Title,
				ui.Muted.Render(fmt.Sprintf("[%s] +%d XP, +%d min", res.Difficulty, res.XPGained, res.MinutesGained)))
			if res.LevelsGained > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.BadgeLevelUp,
					ui.Gold.Render(fmt.Sprintf("x%d", res.LevelsGained)),
					ui.Muted.Render(fmt.Sprintf("→ level %d, +%d min", res.Level, res.LevelsGained*engine.LevelMinutesBonus)))
			}
			for _, name := range res.NewAchievements {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Gold.Render(ui.IconBadge+" Achievement unlocked:"), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "difficulty", "d", "noob", "Difficulty (noob|normal|hardcore|hoellenfeuer)")

	return cmd
}
