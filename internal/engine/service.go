package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
)

// Service owns the in-memory game state and applies every mutation to it.
// All interactions are synchronous: one UI action is fully processed before
// the next begins, so no locking is needed. Elapsed-time values are always
// derived from stored start timestamps against the clock, never accumulated
// in the background.
type Service struct {
	state *storage.GameState

	// now is swapped out in tests that exercise calendar logic.
	now func() time.Time
}

func NewService(st *storage.GameState) *Service {
	return &Service{state: st, now: time.Now}
}

func (s *Service) State() *storage.GameState { return s.state }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

// guardAlive blocks mutations on a dead save.
func (s *Service) guardAlive() error {
	if s.state.Meta.Dead {
		return GameOverError{}
	}
	return nil
}

// logf appends a timestamped line to the persisted journal.
func (s *Service) logf(format string, args ...any) {
	line := fmt.Sprintf("[%s] %s", s.now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
	s.state.Logs = append(s.state.Logs, line)
}

// RecentLogs returns up to n journal lines, newest first.
func (s *Service) RecentLogs(n int) []string {
	logs := s.state.Logs
	if n <= 0 || n > len(logs) {
		n = len(logs)
	}
	out := make([]string, 0, n)
	for i := len(logs) - 1; i >= len(logs)-n; i-- {
		out = append(out, logs[i])
	}
	return out
}

func (s *Service) dayString(t time.Time) string {
	return t.Format(storage.DayLayout)
}

func weekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// isoLayouts covers timestamps written by this app (RFC3339) and the naive
// ISO strings found in saves from other installs.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	storage.DayLayout,
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized timestamp: " + s)
}

// secondsSince mirrors the save-file convention: a nil or unparseable
// timestamp counts as zero elapsed seconds.
func (s *Service) secondsSince(iso *string) int {
	if iso == nil || *iso == "" {
		return 0
	}
	t, err := parseISO(*iso)
	if err != nil {
		return 0
	}
	d := s.now().Sub(t)
	if d < 0 {
		return 0
	}
	return int(d.Seconds())
}
