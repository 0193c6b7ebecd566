package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "List and claim daily/weekly quests",
	}
	cmd.AddCommand(newQuestListCmd(), newQuestClaimCmd())
	return cmd
}

func newQuestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the quest catalog with claim status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quests"))
			for _, q := range a.svc.Quests() {
				cadence := "daily"
				if q.Weekly {
					cadence = "weekly"
				}
				mark := ui.Muted.Render("open")
				if q.Done {
					mark = ui.Good.Render("claimed")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n",
					ui.Key.Render(q.Name),
					ui.Muted.Render(fmt.Sprintf("(%s)", cadence)),
					ui.Muted.Render(fmt.Sprintf("+%d XP, +%d min", q.XP, q.Minutes)),
					mark)
			}
			return nil
		},
	}
}

func newQuestClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <name>",
		Short: "Claim a quest reward (once per day/week)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("quest name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			a.svc.TouchLastOpened()

			res, err := a.svc.ClaimQuest(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if res.Already {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Quest already claimed for this period: "+res.Name))
				return nil
			}
			a.save(cmd)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconQuest+" Claimed"),
				res.Name,
				ui.Muted.Render(fmt.Sprintf("+%d XP, +%d min", res.XP, res.Minutes)))
			return nil
		},
	}
}
