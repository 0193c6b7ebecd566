package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var showAchievements bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player stats, quests and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st := a.svc.State()

			if st.Meta.Dead {
				fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" GAME OVER — 7+ days of inactivity."))
				fmt.Fprintln(out, ui.Muted.Render("Run 'rpg respawn' to start over."))
				a.save(cmd)
				return nil
			}
			a.svc.TouchLastOpened()

			p := st.Player
			fmt.Fprintln(out, ui.Heading(ui.IconPlayer, "Retro Task RPG — "+p.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			bar := ui.PixelBar(float64(p.XP)/float64(p.XPForNext), 30)
			fmt.Fprintf(out, "%s %d / %d\n", ui.Key.Render("XP:"), p.XP, p.XPForNext)
			fmt.Fprintln(out, ui.Dim.Render(bar))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconStreak, p.StreakDays)))
			fmt.Fprintln(out, ui.LabelValue("Minute bank", fmt.Sprintf("%d min", p.MinutesBank)))
			hardcore := ui.Muted.Render("off")
			if st.Meta.Hardcore {
				hardcore = ui.Bad.Render("ON")
			}
			fmt.Fprintln(out, ui.LabelValue("Hardcore", hardcore))
			fmt.Fprintln(out, ui.LabelValue("Tasks done", a.svc.TotalTasks()))
			fmt.Fprintln(out, "")

			if t := st.Timers; t.PomodoroRunning || t.SessionRunning {
				fmt.Fprintln(out, ui.H2.Render("Timers"))
				if t.PomodoroRunning {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(ui.IconPomodoro+" Pomodoro:"),
						ui.Gold.Render(ui.Clock(a.svc.PomodoroRemaining())),
						ui.PomodoroBlocks(a.svc.PomodoroBlockIndex(), true))
				}
				if t.SessionRunning {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(ui.IconSession+" Session:"),
						ui.Gold.Render(ui.Clock(a.svc.SessionRemaining())))
				}
				fmt.Fprintln(out, "")
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests"))
			for _, q := range a.svc.Quests() {
				cadence := "daily"
				if q.Weekly {
					cadence = "weekly"
				}
				mark := ui.Muted.Render("open")
				if q.Done {
					mark = ui.Good.Render("claimed")
				}
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(q.Name), ui.Muted.Render("("+cadence+")"), mark)
			}
			fmt.Fprintln(out, "")

			if showAchievements {
				fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Achievements"))
				for _, ach := range a.svc.AchievementCatalog() {
					mark := ui.Muted.Render("—")
					if ach.Earned {
						mark = ui.Gold.Render("★")
					}
					fmt.Fprintf(out, "- %s %s %s\n", mark, ui.Key.Render(ach.Name), ui.Muted.Render(ach.Description))
				}
			} else {
				badges := st.Achievements.LevelBadges
				if len(badges) > 0 {
					fmt.Fprintln(out, ui.LabelValue(ui.IconBadge+" Badges", fmt.Sprintf("%v", badges)))
				}
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Dim.Render(ui.IconQuote+" "+ui.QuoteForLevel(p.Level)))

			a.save(cmd)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAchievements, "achievements", false, "Show the full achievement catalog")

	return cmd
}
