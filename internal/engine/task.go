package engine

import (
	"fmt"
	"math"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
)

type TaskResult struct {
	Title           string
	Difficulty      Difficulty
	XPGained        int
	MinutesGained   int
	LevelsGained    int
	Level           int
	NewAchievements []string
}

// CompleteTask logs a finished task and pays out its rewards:
// xp = round(base × difficulty multiplier × hardcore bonus),
// minutes = round(base × difficulty multiplier). The entry is appended to the
// task log, the difficulty counter is bumped, XP is applied (which may level
// up), minutes are banked and special achievements are checked.
func (s *Service) CompleteTask(title string, d Difficulty) (*TaskResult, error) {
	if err := s.guardAlive(); err != nil {
		return nil, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %q", d)
	}

	mult := d.Multiplier()
	xp := TaskBaseXP * mult
	if s.state.Meta.Hardcore {
		xp *= HardcoreGlobalBonus
	}
	xpGain := int(math.Round(xp))
	minutesGain := int(math.Round(TaskBaseMinutes * mult))

	s.state.Tasks.Counts[string(d)]++
	s.state.Tasks.Log = append(s.state.Tasks.Log, storage.TaskEntry{
		TS:          s.now().Format(storage.ISOTime),
		Title:       title,
		Difficulty:  string(d),
		XPGain:      xpGain,
		MinutesGain: minutesGain,
	})

	levels := s.AddXP(xpGain)
	s.state.Player.MinutesBank += minutesGain
	s.logf("Task done: %s [%s] +%d XP, +%d min", title, d, xpGain, minutesGain)

	newAch := s.checkSpecialAchievements()

	return &TaskResult{
		Title:           title,
		Difficulty:      d,
		XPGained:        xpGain,
		MinutesGained:   minutesGain,
		LevelsGained:    levels,
		Level:           s.state.Player.Level,
		NewAchievements: newAch,
	}, nil
}

// TotalTasks is the cumulative completion count across all difficulties.
func (s *Service) TotalTasks() int {
	total := 0
	for _, n := range s.state.Tasks.Counts {
		total += n
	}
	return total
}

// RecentTasks returns up to n task log entries, newest first.
func (s *Service) RecentTasks(n int) []storage.TaskEntry {
	log := s.state.Tasks.Log
	if n <= 0 || n > len(log) {
		n = len(log)
	}
	out := make([]storage.TaskEntry, 0, n)
	for i := len(log) - 1; i >= len(log)-n; i-- {
		out = append(out, log[i])
	}
	return out
}

// checkSpecialAchievements grants "Grinder N" achievements for cumulative
// task-count milestones. The set is monotonic.
func (s *Service) checkSpecialAchievements() []string {
	held := make(map[string]bool, len(s.state.Achievements.Special))
	for _, a := range s.state.Achievements.Special {
		held[a] = true
	}

	total := s.TotalTasks()
	var earned []string
	for _, m := range specialMilestones {
		name := fmt.Sprintf("Grinder %d", m)
		if total >= m && !held[name] {
			s.state.Achievements.Special = append(s.state.Achievements.Special, name)
			s.logf("Achievement unlocked: %s", name)
			earned = append(earned, name)
		}
	}
	return earned
}
