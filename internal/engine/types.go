package engine

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyNoob         Difficulty = "Noob"
	DifficultyNormal       Difficulty = "Normal"
	DifficultyHardcore     Difficulty = "Hardcore"
	DifficultyHoellenfeuer Difficulty = "Höllenfeuer"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyNoob, DifficultyNormal, DifficultyHardcore, DifficultyHoellenfeuer:
		return true
	default:
		return false
	}
}

// Multiplier scales both the XP and the play-minute reward of a task.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyNormal:
		return 1.5
	case DifficultyHardcore:
		return 2.5
	case DifficultyHoellenfeuer:
		return 4.0
	default:
		return 1.0
	}
}

// ParseDifficulty parses user input to a Difficulty.
// Supported: noob, normal, hardcore, höllenfeuer (also hoellenfeuer, hell).
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "noob":
		return DifficultyNoob, nil
	case "normal":
		return DifficultyNormal, nil
	case "hardcore":
		return DifficultyHardcore, nil
	case "höllenfeuer", "hoellenfeuer", "hell":
		return DifficultyHoellenfeuer, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
}

// Difficulties lists all tiers in ascending reward order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyNoob, DifficultyNormal, DifficultyHardcore, DifficultyHoellenfeuer}
}

const (
	// TaskBaseXP is the base XP of a task before the difficulty multiplier.
	TaskBaseXP = 10.0

	// TaskBaseMinutes is the base play-minute reward of a task.
	TaskBaseMinutes = 1.0

	// HardcoreGlobalBonus multiplies task XP while hardcore mode is on.
	HardcoreGlobalBonus = 1.25

	// XPGrowthFactor grows xp_for_next on every level-up (ceiling-rounded).
	XPGrowthFactor = 1.25

	// LevelMinutesBonus is the play minutes granted per level-up.
	LevelMinutesBonus = 5

	// StreakBonusXP / StreakBonusMinutes are granted when the streak first
	// reaches one of streakBonusDays.
	StreakBonusXP      = 20
	StreakBonusMinutes = 5

	// GameOverAfter is the inactivity window before the player is marked dead.
	GameOverAfter = 7 * 24 * time.Hour
)

// levelBadges is the ladder of level milestones; each badge is awarded once.
var levelBadges = []struct {
	Level int
	Name  string
}{
	{5, "Bronze"},
	{10, "Silver"},
	{20, "Gold"},
	{30, "Platinum"},
	{40, "Diamond"},
}

// specialMilestones are the cumulative task-count thresholds for the
// "Grinder N" achievements.
var specialMilestones = []int{10, 25, 50, 100, 200}
