package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/config"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/engine"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

// app bundles what every command needs: the store for persistence and the
// engine service holding the loaded state.
type app struct {
	cfg   *config.Config
	store *storage.Store
	svc   *engine.Service
}

// openApp loads config and state (cloud-first) and runs the game-over check.
// Load problems are warnings, never errors.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store := storage.NewStore(cfg.SaveDir, cfg.CloudDir, cfg.PlayerName)
	st, warns := store.Load()
	printWarnings(cmd, warns)

	svc := engine.NewService(st)
	svc.CheckGameOver()
	return &app{cfg: cfg, store: store, svc: svc}, nil
}

// save persists local + cloud mirror; failures are shown, not returned.
func (a *app) save(cmd *cobra.Command) {
	printWarnings(cmd, a.store.Save(a.svc.State()))
}

func printWarnings(cmd *cobra.Command, warns []string) {
	for _, w := range warns {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+w))
	}
}
