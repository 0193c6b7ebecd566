package engine

import (
	"errors"
	"testing"
	"time"
)

func TestPomodoroLifecycle(t *testing.T) {
	svc, clock := newTestService(t)

	if rem := svc.PomodoroRemaining(); rem != 0 {
		t.Fatalf("idle remaining=%d, want 0", rem)
	}
	if res, err := svc.StopPomodoro(); err != nil || res != nil {
		t.Fatalf("stop while idle: res=%v err=%v, want no-op", res, err)
	}

	started, err := svc.StartPomodoro()
	if err != nil || !started {
		t.Fatalf("StartPomodoro: started=%v err=%v", started, err)
	}
	if started, _ := svc.StartPomodoro(); started {
		t.Fatalf("second start should be a no-op")
	}

	clock.advance(10 * time.Minute)
	if rem := svc.PomodoroRemaining(); rem != 15*60 {
		t.Fatalf("remaining=%d, want %d", rem, 15*60)
	}
	if idx := svc.PomodoroBlockIndex(); idx != 2 {
		t.Fatalf("block index=%d, want 2", idx)
	}

	res, err := svc.StopPomodoro()
	if err != nil {
		t.Fatalf("StopPomodoro: %v", err)
	}
	if res.SpentSeconds != 10*60 {
		t.Fatalf("spent=%d, want %d", res.SpentSeconds, 10*60)
	}
	if svc.State().Timers.PomodoroRunning {
		t.Fatalf("still running after stop")
	}
}

func TestPomodoroRemainingClampsToZero(t *testing.T) {
	svc, clock := newTestService(t)

	if err := svc.SetPomodoroLength(5); err != nil {
		t.Fatalf("SetPomodoroLength: %v", err)
	}
	if _, err := svc.StartPomodoro(); err != nil {
		t.Fatalf("StartPomodoro: %v", err)
	}
	clock.advance(time.Hour)
	if rem := svc.PomodoroRemaining(); rem != 0 {
		t.Fatalf("overrun remaining=%d, want 0", rem)
	}
}

func TestSetPomodoroLengthBounds(t *testing.T) {
	svc, _ := newTestService(t)

	for _, bad := range []int{0, 4, 61, -10} {
		if err := svc.SetPomodoroLength(bad); err == nil {
			t.Fatalf("SetPomodoroLength(%d) accepted", bad)
		}
	}
	if err := svc.SetPomodoroLength(45); err != nil {
		t.Fatalf("SetPomodoroLength(45): %v", err)
	}
}

func TestSessionRequiresBank(t *testing.T) {
	svc, _ := newTestService(t)
	svc.State().Player.MinutesBank = 10

	err := svc.StartSession(15)
	var insufficient InsufficientMinutesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err=%v, want InsufficientMinutesError", err)
	}
	if insufficient.Bank != 10 || insufficient.Requested != 15 {
		t.Fatalf("error detail: %+v", insufficient)
	}
	if svc.State().Player.MinutesBank != 10 {
		t.Fatalf("bank changed on rejected start: %d", svc.State().Player.MinutesBank)
	}
	if svc.State().Timers.SessionRunning {
		t.Fatalf("session running after rejected start")
	}
}

func TestSessionDebitAndEarlyStopCredit(t *testing.T) {
	svc, clock := newTestService(t)
	svc.State().Player.MinutesBank = 20

	if err := svc.StartSession(15); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if bank := svc.State().Player.MinutesBank; bank != 5 {
		t.Fatalf("bank after debit=%d, want 5", bank)
	}

	// 4m30s in: 10.5 minutes remain, only whole minutes come back.
	clock.advance(4*time.Minute + 30*time.Second)
	if rem := svc.SessionRemaining(); rem != 10*60+30 {
		t.Fatalf("remaining=%d, want %d", rem, 10*60+30)
	}

	res, err := svc.StopSession()
	if err != nil {
		t.Fatalf("StopSession: %v", err)
	}
	if res.CreditedMinutes != 10 {
		t.Fatalf("credited=%d, want 10", res.CreditedMinutes)
	}
	if bank := svc.State().Player.MinutesBank; bank != 15 {
		t.Fatalf("bank after credit=%d, want 15", bank)
	}
	if svc.State().Timers.SessionRunning {
		t.Fatalf("still running after stop")
	}
}

func TestSessionOverrunCreditsNothing(t *testing.T) {
	svc, clock := newTestService(t)
	svc.State().Player.MinutesBank = 15

	if err := svc.StartSession(15); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	clock.advance(time.Hour)
	if rem := svc.SessionRemaining(); rem != 0 {
		t.Fatalf("overrun remaining=%d, want 0", rem)
	}

	res, err := svc.StopSession()
	if err != nil {
		t.Fatalf("StopSession: %v", err)
	}
	if res.CreditedMinutes != 0 {
		t.Fatalf("credited=%d, want 0", res.CreditedMinutes)
	}
	if bank := svc.State().Player.MinutesBank; bank != 0 {
		t.Fatalf("bank=%d, want 0", bank)
	}
}

func TestSessionRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	svc.State().Player.MinutesBank = 100

	if err := svc.StartSession(0); err == nil {
		t.Fatalf("StartSession(0) accepted")
	}
	if err := svc.StartSession(15); err != nil {
		t.Fatalf("StartSession(15): %v", err)
	}
	if err := svc.StartSession(5); err == nil {
		t.Fatalf("second concurrent session accepted")
	}
	if res, _ := svc.StopSession(); res == nil {
		t.Fatalf("expected running session to stop")
	}
	if res, err := svc.StopSession(); err != nil || res != nil {
		t.Fatalf("stop while idle: res=%v err=%v, want no-op", res, err)
	}
}
