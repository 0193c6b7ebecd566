package storage

import "time"

// Version is the save document format version. It is the one piece of state
// that survives a respawn.
const Version = "7.9"

// ISOTime is the timestamp layout used inside the save document. Dates use
// DayLayout, ISO week ids look like "2026-W35".
const (
	ISOTime   = time.RFC3339
	DayLayout = "2006-01-02"
)

// GameState is the entire persisted game: a flat mutable record, written as a
// single JSON document. Field names match the on-disk keys exactly so saves
// produced by other installs of the app load unchanged.
type GameState struct {
	Meta         Meta         `json:"meta"`
	Player       Player       `json:"player"`
	Timers       Timers       `json:"timers"`
	Tasks        Tasks        `json:"tasks"`
	Quests       Quests       `json:"quests"`
	Achievements Achievements `json:"achievements"`
	Logs         []string     `json:"logs"`
}

type Meta struct {
	Version    string `json:"version"`
	Created    string `json:"created"`
	LastOpened string `json:"last_opened"`
	Hardcore   bool   `json:"hardcore"`
	Dead       bool   `json:"dead"`
}

type Player struct {
	Name             string  `json:"name"`
	Level            int     `json:"level"`
	XP               int     `json:"xp"`
	XPForNext        int     `json:"xp_for_next"`
	StreakDays       int     `json:"streak_days"`
	LastCheckin      *string `json:"last_checkin"`
	MinutesBank      int     `json:"minutes_bank"`
	QuotesLevelIndex int     `json:"quotes_level_index"`
}

type Timers struct {
	PomodoroLength        int     `json:"pomodoro_length"`
	PomodoroStart         *string `json:"pomodoro_start"`
	PomodoroRunning       bool    `json:"pomodoro_running"`
	PomodoroPausedSeconds int     `json:"pomodoro_paused_seconds"`
	SessionStart          *string `json:"session_start"`
	SessionRunning        bool    `json:"session_running"`
	SessionTargetMinutes  int     `json:"session_target_minutes"`
	SessionSpentSeconds   int     `json:"session_spent_seconds"`
}

type Tasks struct {
	Log    []TaskEntry    `json:"log"`
	Counts map[string]int `json:"counts"`
}

// TaskEntry is one line of the append-only completion log.
type TaskEntry struct {
	TS          string `json:"ts"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	XPGain      int    `json:"xp_gain"`
	MinutesGain int    `json:"minutes_gain"`
}

type Quests struct {
	Daily  map[string]*DailyQuest  `json:"daily"`
	Weekly map[string]*WeeklyQuest `json:"weekly"`
}

type DailyQuest struct {
	XP      int     `json:"xp"`
	Minutes int     `json:"minutes"`
	DoneOn  *string `json:"done_on"`
}

type WeeklyQuest struct {
	XP         int     `json:"xp"`
	Minutes    int     `json:"minutes"`
	DoneOnWeek *string `json:"done_on_week"`
}

type Achievements struct {
	LevelBadges []string `json:"level_badges"`
	Special     []string `json:"special"`
}

// DefaultState builds a fresh save for a first run (or a respawn).
func DefaultState(playerName string, now time.Time) *GameState {
	if playerName == "" {
		playerName = "Player One"
	}
	ts := now.Format(ISOTime)
	return &GameState{
		Meta: Meta{
			Version:    Version,
			Created:    ts,
			LastOpened: ts,
		},
		Player: Player{
			Name:      playerName,
			Level:     1,
			XP:        0,
			XPForNext: 100,
		},
		Timers: Timers{
			PomodoroLength: 25,
		},
		Tasks: Tasks{
			Log:    []TaskEntry{},
			Counts: defaultCounts(),
		},
		Quests: Quests{
			Daily:  defaultDailyQuests(),
			Weekly: defaultWeeklyQuests(),
		},
		Achievements: Achievements{
			LevelBadges: []string{},
			Special:     []string{},
		},
		Logs: []string{},
	}
}

func defaultCounts() map[string]int {
	return map[string]int{
		"Noob":        0,
		"Normal":      0,
		"Hardcore":    0,
		"Höllenfeuer": 0,
	}
}

func defaultDailyQuests() map[string]*DailyQuest {
	return map[string]*DailyQuest{
		"Power-Up Workout": {XP: 30, Minutes: 5},
		"Deep Focus 60":    {XP: 40, Minutes: 10},
	}
}

func defaultWeeklyQuests() map[string]*WeeklyQuest {
	return map[string]*WeeklyQuest{
		"NoPo Weekly":  {XP: 60, Minutes: 15},
		"Project Push": {XP: 80, Minutes: 20},
	}
}

// normalize repairs a loaded document: nil maps/slices from older or partial
// saves get their defaults back, and the quest catalog gains entries added
// since the save was written. Completion markers are never touched.
func (st *GameState) normalize() {
	if st.Meta.Version == "" {
		st.Meta.Version = Version
	}
	if st.Player.XPForNext <= 0 {
		st.Player.XPForNext = 100
	}
	if st.Player.Level < 1 {
		st.Player.Level = 1
	}
	if st.Timers.PomodoroLength <= 0 {
		st.Timers.PomodoroLength = 25
	}
	if st.Tasks.Log == nil {
		st.Tasks.Log = []TaskEntry{}
	}
	if st.Tasks.Counts == nil {
		st.Tasks.Counts = map[string]int{}
	}
	for k, v := range defaultCounts() {
		if _, ok := st.Tasks.Counts[k]; !ok {
			st.Tasks.Counts[k] = v
		}
	}
	if st.Quests.Daily == nil {
		st.Quests.Daily = map[string]*DailyQuest{}
	}
	for name, q := range defaultDailyQuests() {
		if st.Quests.Daily[name] == nil {
			st.Quests.Daily[name] = q
		}
	}
	if st.Quests.Weekly == nil {
		st.Quests.Weekly = map[string]*WeeklyQuest{}
	}
	for name, q := range defaultWeeklyQuests() {
		if st.Quests.Weekly[name] == nil {
			st.Quests.Weekly[name] = q
		}
	}
	if st.Achievements.LevelBadges == nil {
		st.Achievements.LevelBadges = []string{}
	}
	if st.Achievements.Special == nil {
		st.Achievements.Special = []string{}
	}
	if st.Logs == nil {
		st.Logs = []string{}
	}
}
