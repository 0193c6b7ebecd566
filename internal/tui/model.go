package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/engine"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
	"github.com/BikiniBill/RetroTaskRPGCloud/internal/ui"
)

type inputMode int

const (
	modeNav inputMode = iota
	modeTask
	modeSession
)

type dashModel struct {
	svc   *engine.Service
	store *storage.Store

	width  int
	height int

	mode    inputMode
	input   textinput.Model
	diffIdx int

	lastLog string
}

// tickMsg only triggers a re-render; remaining times are always recomputed
// from the stored start timestamps.
type tickMsg time.Time

func newDashModel(svc *engine.Service, store *storage.Store) dashModel {
	in := textinput.New()
	in.Placeholder = "task title"
	in.CharLimit = 120
	in.Width = 40

	return dashModel{
		svc:     svc,
		store:   store,
		input:   in,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tickCmd()
	case tea.KeyMsg:
		if m.mode != modeNav {
			return m.updateTyping(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m dashModel) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		m.mode = modeTask
		m.input.Placeholder = "task title"
		m.input.SetValue("")
		m.input.Focus()
		m.lastLog = "Enter a task title. Tab cycles difficulty, enter completes, esc cancels."
		return m, textinput.Blink
	case "s":
		if m.svc.State().Timers.SessionRunning {
			return m.applyMutation(func() string {
				res, err := m.svc.StopSession()
				if err != nil {
					return err.Error()
				}
				return fmt.Sprintf("Session stopped, refunded %d min.", res.CreditedMinutes)
			})
		}
		m.mode = modeSession
		m.input.Placeholder = "session minutes"
		m.input.SetValue("")
		m.input.Focus()
		m.lastLog = "How many minutes to spend? Enter starts, esc cancels."
		return m, textinput.Blink
	case "c":
		return m.applyMutation(func() string {
			res, err := m.svc.CheckIn()
			if err != nil {
				return err.Error()
			}
			if res.Already {
				return fmt.Sprintf("Already checked in today (streak %d).", res.Streak)
			}
			if res.Bonus {
				return fmt.Sprintf("Checked in! Streak %d — bonus +%d XP.", res.Streak, engine.StreakBonusXP)
			}
			return fmt.Sprintf("Checked in! Streak %d.", res.Streak)
		})
	case "p":
		return m.applyMutation(func() string {
			if m.svc.State().Timers.PomodoroRunning {
				res, err := m.svc.StopPomodoro()
				if err != nil {
					return err.Error()
				}
				return fmt.Sprintf("Pomodoro stopped after %dm %ds.", res.SpentSeconds/60, res.SpentSeconds%60)
			}
			if _, err := m.svc.StartPomodoro(); err != nil {
				return err.Error()
			}
			return fmt.Sprintf("Pomodoro started (%d min).", m.svc.State().Timers.PomodoroLength)
		})
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(msg.String())
		quests := m.svc.Quests()
		if idx < 1 || idx > len(quests) {
			m.lastLog = "No such quest."
			return m, nil
		}
		name := quests[idx-1].Name
		return m.applyMutation(func() string {
			res, err := m.svc.ClaimQuest(name)
			if err != nil {
				return err.Error()
			}
			if res.Already {
				return "Quest already claimed: " + name
			}
			return fmt.Sprintf("Claimed %s: +%d XP, +%d min.", res.Name, res.XP, res.Minutes)
		})
	}
	return m, nil
}

func (m dashModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeNav
		m.input.Blur()
		m.lastLog = "Cancelled."
		return m, nil
	case "tab":
		if m.mode == modeTask {
			m.diffIdx = (m.diffIdx + 1) % len(engine.Difficulties())
		}
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeNav
		m.input.Blur()

		if mode == modeSession {
			minutes, err := strconv.Atoi(value)
			if err != nil {
				m.lastLog = "Session minutes must be an integer."
				return m, nil
			}
			return m.applyMutation(func() string {
				if err := m.svc.StartSession(minutes); err != nil {
					return err.Error()
				}
				return fmt.Sprintf("Session started: %d min.", minutes)
			})
		}

		diff := engine.Difficulties()[m.diffIdx]
		return m.applyMutation(func() string {
			res, err := m.svc.CompleteTask(value, diff)
			if err != nil {
				return err.Error()
			}
			out := fmt.Sprintf("Done: %s [%s] +%d XP, +%d min.", res.Title, res.Difficulty, res.XPGained, res.MinutesGained)
			if res.LevelsGained > 0 {
				out += fmt.Sprintf(" LEVEL UP → %d!", res.Level)
			}
			return out
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyMutation runs a state change, persists it, and records the outcome in
// the footer log.
func (m dashModel) applyMutation(fn func() string) (tea.Model, tea.Cmd) {
	m.svc.TouchLastOpened()
	m.lastLog = fn()
	if warns := m.store.Save(m.svc.State()); len(warns) > 0 {
		m.lastLog += " (save: " + warns[0] + ")"
	}
	return m, nil
}

func (m dashModel) View() string {
	st := m.svc.State()

	if st.Meta.Dead {
		return ui.Bad.Render(ui.IconSkull+" GAME OVER") + "\n\n" +
			"7+ days of inactivity. Run 'rpg respawn' to start over.\n\n" +
			"Press q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + ui.Muted.Render(m.lastLog)

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	p := m.svc.State().Player
	bar := ui.PixelBar(float64(p.XP)/float64(p.XPForNext), 30)
	hardcore := ""
	if m.svc.State().Meta.Hardcore {
		hardcore = " " + ui.Bad.Render("[HARDCORE]")
	}
	return fmt.Sprintf("%s | %s | Level %d | XP %d/%d %s%s",
		ui.Title.Render("RETRO TASK RPG"), p.Name, p.Level, p.XP, p.XPForNext, ui.Dim.Render(bar), hardcore)
}

func (m dashModel) renderSidebar() string {
	st := m.svc.State()
	lines := []string{
		ui.H2.Render("Stats"),
		fmt.Sprintf("- %s %d days", ui.IconStreak, st.Player.StreakDays),
		fmt.Sprintf("- bank: %d min", st.Player.MinutesBank),
		fmt.Sprintf("- tasks done: %d", m.svc.TotalTasks()),
		fmt.Sprintf("- achievements: %d", m.svc.CountEarned()),
		"",
		ui.H2.Render("Timers"),
	}
	if st.Timers.PomodoroRunning {
		lines = append(lines, fmt.Sprintf("- %s %s %s", ui.IconPomodoro, ui.Clock(m.svc.PomodoroRemaining()),
			ui.PomodoroBlocks(m.svc.PomodoroBlockIndex(), true)))
	} else {
		lines = append(lines, fmt.Sprintf("- %s idle (%d min)", ui.IconPomodoro, st.Timers.PomodoroLength))
	}
	if st.Timers.SessionRunning {
		lines = append(lines, fmt.Sprintf("- %s %s left", ui.IconSession, ui.Clock(m.svc.SessionRemaining())))
	} else {
		lines = append(lines, fmt.Sprintf("- %s idle", ui.IconSession))
	}
	lines = append(lines,
		"",
		ui.H2.Render("Keys"),
		"- t: new task",
		"- c: check-in",
		"- p: pomodoro start/stop",
		"- s: session start/stop",
		"- 1-9: claim quest",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m dashModel) renderMain() string {
	var out []string

	out = append(out, ui.H2.Render(ui.IconQuest+" Quests"))
	for i, q := range m.svc.Quests() {
		cadence := "daily"
		if q.Weekly {
			cadence = "weekly"
		}
		mark := "open"
		if q.Done {
			mark = ui.Good.Render("claimed")
		}
		out = append(out, fmt.Sprintf("%d. %s (%s, +%d XP, +%d min) %s", i+1, q.Name, cadence, q.XP, q.Minutes, mark))
	}

	out = append(out, "", ui.H2.Render(ui.IconTask+" Recent tasks"))
	recent := m.svc.RecentTasks(5)
	if len(recent) == 0 {
		out = append(out, ui.Muted.Render("(none yet)"))
	}
	for _, t := range recent {
		out = append(out, fmt.Sprintf("- %s [%s] +%d XP", t.Title, t.Difficulty, t.XPGain))
	}

	if m.mode != modeNav {
		label := "New task"
		if m.mode == modeSession {
			label = "Session minutes"
		}
		out = append(out, "", ui.H2.Render(label))
		out = append(out, m.input.View())
		if m.mode == modeTask {
			out = append(out, ui.Muted.Render("difficulty: ")+ui.SelectedRow.Render(string(engine.Difficulties()[m.diffIdx])))
		}
	}

	out = append(out, "", ui.Dim.Render(ui.IconQuote+" "+ui.QuoteForLevel(m.svc.State().Player.Level)))
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
