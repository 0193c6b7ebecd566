package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

const Version = "7.9"

var rootCmd = &cobra.Command{
	Use:           "rpg",
	Short:         "Retro Task RPG — gamified task tracking with cloud-synced saves",
	Long:          "Retro Task RPG turns your task list into an RPG: complete tasks for XP and play minutes, keep streaks, run pomodoros and play sessions, and sync one JSON save file through your cloud drive.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newTaskCmd(),
		newCheckinCmd(),
		newQuestCmd(),
		newPomodoroCmd(),
		newSessionCmd(),
		newHardcoreCmd(),
		newRespawnCmd(),
		newSyncCmd(),
		newLogCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
