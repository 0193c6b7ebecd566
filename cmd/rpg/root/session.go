package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Spend banked minutes on a play session",
	}
	cmd.AddCommand(newSessionStartCmd(), newSessionStopCmd(), newSessionStatusCmd())
	return cmd
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <minutes>",
		Short: "Start a session (debits the minute bank up front)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("minutes is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("minutes must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, _ := strconv.Atoi(args[0])

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			if err := a.svc.StartSession(minutes); err != nil {
				return err
			}
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d minutes %s\n",
				ui.Good.Render(ui.IconSession+" Session started:"),
				minutes,
				ui.Muted.Render(fmt.Sprintf("(bank: %d min)", a.svc.State().Player.MinutesBank)))
			return nil
		},
	}
}

func newSessionStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the session and credit unused minutes back",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			res, err := a.svc.StopSession()
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No session running."))
				return nil
			}
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconSession+" Session stopped."),
				ui.Key.Render(fmt.Sprintf("Refunded: %d min (bank: %d)", res.CreditedMinutes, a.svc.State().Player.MinutesBank)))
			return nil
		},
	}
}

func newSessionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session countdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			t := a.svc.State().Timers
			if !t.SessionRunning {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("No session running. Bank: %d min", a.svc.State().Player.MinutesBank)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Key.Render(ui.IconSession+" Countdown:"),
				ui.Gold.Render(ui.Clock(a.svc.SessionRemaining())),
				ui.Muted.Render(fmt.Sprintf("(target %d min)", t.SessionTargetMinutes)))
			return nil
		},
	}
}
