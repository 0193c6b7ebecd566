package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Retro Task RPG theme (CLI + TUI).
// CRT phosphor green on black, a few accents, and the pixel progress bar.

const (
	IconPlayer   = "👤"
	IconTask     = "📝"
	IconStreak   = "🔥"
	IconPomodoro = "⏱️"
	IconSession  = "🎮"
	IconQuest    = "🏆"
	IconBadge    = "🎖️"
	IconSave     = "💾"
	IconLoad     = "📂"
	IconSkull    = "☠️"
	IconRespawn  = "🔄"
	IconSparkle  = "✨"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconScroll   = "📜"
	IconQuote    = "🗨️"
	IconLevelUp  = "⬆️"
)

var (
	cNeon   = lipgloss.Color("48")  // phosphor green
	cDimmed = lipgloss.Color("29")  // darker green
	cGold   = lipgloss.Color("220") // gold
	cWarn   = lipgloss.Color("214") // orange
	cBad    = lipgloss.Color("196") // red
	cMuted  = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cNeon)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cDimmed)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cNeon)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cNeon)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Dim   = lipgloss.NewStyle().Foreground(cDimmed)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cDimmed).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PixelBar renders progress in [0,1] as a block bar.
func PixelBar(progress float64, width int) string {
	if width <= 0 {
		width = 30
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("▁", width-filled)
}

// Clock formats seconds as MM:SS.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PomodoroBlocks renders the 5-block pomodoro progress strip; the current
// block is hollow while running.
func PomodoroBlocks(index int, running bool) string {
	blocks := make([]string, 5)
	for i := range blocks {
		switch {
		case i < index:
			blocks[i] = "[█]"
		case i == index && running:
			blocks[i] = Gold.Render("[█]")
		default:
			blocks[i] = "[ ]"
		}
	}
	return strings.Join(blocks, " ")
}

var retroQuotes = []string{
	"⚔️ “It's dangerous to go alone! Take this.”",
	"🔮 “Finish him!”",
	"💥 “Hadouken!”",
	"👾 “Do a barrel roll!”",
	"🎮 “All your base are belong to us.”",
}

// QuoteForLevel rotates the footer quote with the player level.
func QuoteForLevel(level int) string {
	if level < 0 {
		level = 0
	}
	return retroQuotes[level%len(retroQuotes)]
}
