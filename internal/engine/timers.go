package engine

import (
	"fmt"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
)

// PomodoroStopResult reports how long the pomodoro actually ran.
type PomodoroStopResult struct {
	SpentSeconds int
}

// SessionStopResult reports the whole unused minutes credited back.
type SessionStopResult struct {
	CreditedMinutes int
}

// SetPomodoroLength adjusts the pomodoro length (5 to 60 minutes). Length
// changes while running take effect on the remaining-time computation
// immediately.
func (s *Service) SetPomodoroLength(minutes int) error {
	if minutes < 5 || minutes > 60 {
		return fmt.Errorf("pomodoro length must be 5-60 minutes, got %d", minutes)
	}
	s.state.Timers.PomodoroLength = minutes
	return nil
}

// StartPomodoro records the start timestamp and clears paused seconds.
// Starting while one is already running is a no-op.
func (s *Service) StartPomodoro() (bool, error) {
	if err := s.guardAlive(); err != nil {
		return false, err
	}
	t := &s.state.Timers
	if t.PomodoroRunning {
		return false, nil
	}
	start := s.now().Format(storage.ISOTime)
	t.PomodoroStart = &start
	t.PomodoroPausedSeconds = 0
	t.PomodoroRunning = true
	s.logf("Pomodoro started: %d min", t.PomodoroLength)
	return true, nil
}

// StopPomodoro halts a running pomodoro; stopping an idle one is a no-op and
// returns nil.
func (s *Service) StopPomodoro() (*PomodoroStopResult, error) {
	if err := s.guardAlive(); err != nil {
		return nil, err
	}
	t := &s.state.Timers
	if !t.PomodoroRunning {
		return nil, nil
	}
	rem := s.pomodoroRemainingWhileRunning()
	t.PomodoroRunning = false

	spent := t.PomodoroLength*60 - rem
	if spent < 0 {
		spent = 0
	}
	s.logf("Pomodoro stopped: %dm %ds", spent/60, spent%60)
	return &PomodoroStopResult{SpentSeconds: spent}, nil
}

// PomodoroRemaining returns the remaining seconds, 0 when idle. The value is
// computed on demand from the stored start timestamp.
func (s *Service) PomodoroRemaining() int {
	if !s.state.Timers.PomodoroRunning {
		return 0
	}
	return s.pomodoroRemainingWhileRunning()
}

func (s *Service) pomodoroRemainingWhileRunning() int {
	t := &s.state.Timers
	elapsed := s.secondsSince(t.PomodoroStart)
	rem := t.PomodoroLength*60 - elapsed - t.PomodoroPausedSeconds
	if rem < 0 {
		rem = 0
	}
	return rem
}

// PomodoroBlockIndex maps progress onto 5 display blocks (0..4).
func (s *Service) PomodoroBlockIndex() int {
	secs := s.state.Timers.PomodoroLength * 60
	if secs <= 0 {
		return 0
	}
	elapsed := secs - s.PomodoroRemaining()
	if elapsed < 0 {
		elapsed = 0
	}
	block := elapsed * 5 / secs
	if block > 4 {
		block = 4
	}
	return block
}

// StartSession debits the requested minutes from the bank up front and starts
// the play-session countdown. Requests exceeding the bank are rejected with
// no state change.
func (s *Service) StartSession(minutes int) error {
	if err := s.guardAlive(); err != nil {
		return err
	}
	t := &s.state.Timers
	if t.SessionRunning {
		return fmt.Errorf("a session is already running")
	}
	if minutes <= 0 {
		return fmt.Errorf("session minutes must be positive, got %d", minutes)
	}
	if s.state.Player.MinutesBank < minutes {
		return InsufficientMinutesError{Bank: s.state.Player.MinutesBank, Requested: minutes}
	}

	s.state.Player.MinutesBank -= minutes
	start := s.now().Format(storage.ISOTime)
	t.SessionTargetMinutes = minutes
	t.SessionStart = &start
	t.SessionSpentSeconds = 0
	t.SessionRunning = true
	s.logf("Play session started: %d minutes", minutes)
	return nil
}

// StopSession ends a running session and credits whole unused minutes
// (floored) back to the bank. Stopping an idle session is a no-op, nil.
func (s *Service) StopSession() (*SessionStopResult, error) {
	if err := s.guardAlive(); err != nil {
		return nil, err
	}
	t := &s.state.Timers
	if !t.SessionRunning {
		return nil, nil
	}

	spent := s.secondsSince(t.SessionStart) + t.SessionSpentSeconds
	rem := t.SessionTargetMinutes*60 - spent
	if rem < 0 {
		rem = 0
	}
	credit := rem / 60
	if credit > 0 {
		s.state.Player.MinutesBank += credit
	}
	t.SessionRunning = false
	s.logf("Play session stopped. Refunded: %d minutes", credit)
	return &SessionStopResult{CreditedMinutes: credit}, nil
}

// SessionRemaining returns the remaining seconds, 0 when idle.
func (s *Service) SessionRemaining() int {
	t := &s.state.Timers
	if !t.SessionRunning {
		return 0
	}
	spent := s.secondsSince(t.SessionStart) + t.SessionSpentSeconds
	rem := t.SessionTargetMinutes*60 - spent
	if rem < 0 {
		rem = 0
	}
	return rem
}
