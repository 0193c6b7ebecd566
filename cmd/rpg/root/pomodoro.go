package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newPomodoroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pomodoro",
		Aliases: []string{"pomo"},
		Short:   "Focus timer (start/stop/status)",
	}
	cmd.AddCommand(newPomodoroStartCmd(), newPomodoroStopCmd(), newPomodoroStatusCmd())
	return cmd
}

func newPomodoroStartCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the pomodoro",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			if cmd.Flags().Changed("length") {
				if err := a.svc.SetPomodoroLength(length); err != nil {
					return err
				}
			}
			started, err := a.svc.StartPomodoro()
			if err != nil {
				return err
			}
			a.save(cmd)

			if !started {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("A pomodoro is already running."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d min\n", ui.Good.Render(ui.IconPomodoro+" Pomodoro started:"), a.svc.State().Timers.PomodoroLength)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 25, "Length in minutes (5-60)")

	return cmd
}

func newPomodoroStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the pomodoro",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			res, err := a.svc.StopPomodoro()
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No pomodoro running."))
				return nil
			}
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconPomodoro+" Pomodoro stopped after"),
				ui.Key.Render(fmt.Sprintf("%dm %ds", res.SpentSeconds/60, res.SpentSeconds%60)))
			return nil
		},
	}
}

func newPomodoroStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show remaining pomodoro time",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			t := a.svc.State().Timers
			if !t.PomodoroRunning {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Pomodoro idle (%d min configured).", t.PomodoroLength)))
				return nil
			}
			rem := a.svc.PomodoroRemaining()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Key.Render(ui.IconPomodoro+" Remaining:"),
				ui.Gold.Render(ui.Clock(rem)),
				ui.PomodoroBlocks(a.svc.PomodoroBlockIndex(), true))
			return nil
		},
	}
}
