package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/engine"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
)

// RunDashboard starts the interactive dashboard. The store is used to persist
// the state after every mutation, mirroring the CLI commands.
func RunDashboard(svc *engine.Service, store *storage.Store, out io.Writer) error {
	m := newDashModel(svc, store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
