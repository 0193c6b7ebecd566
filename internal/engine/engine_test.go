package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
)

type testClock struct {
	t time.Time
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local)} // a Monday
	st := storage.DefaultState("Tester", clock.t)
	svc := NewService(st)
	svc.now = func() time.Time { return clock.t }
	return svc, clock
}

func TestAddXPLevelLoop(t *testing.T) {
	svc, _ := newTestService(t)
	p := &svc.State().Player

	// Level 1, threshold 100, +250 XP: level up at 100 and 125, 25 left over.
	svc.AddXP(250)
	if p.Level != 3 {
		t.Fatalf("level=%d, want 3", p.Level)
	}
	if p.XP != 25 {
		t.Fatalf("xp=%d, want 25", p.XP)
	}
	if p.XPForNext != 157 { // ceil(125 * 1.25)
		t.Fatalf("xp_for_next=%d, want 157", p.XPForNext)
	}
	if p.MinutesBank != 2*LevelMinutesBonus {
		t.Fatalf("minutes_bank=%d, want %d", p.MinutesBank, 2*LevelMinutesBonus)
	}
}

func TestAddXPInvariantAndNonPositive(t *testing.T) {
	svc, _ := newTestService(t)
	p := &svc.State().Player

	for _, amount := range []int{0, -5, 1, 99, 100, 1234, 7} {
		svc.AddXP(amount)
		if p.XP < 0 || p.XP >= p.XPForNext {
			t.Fatalf("after AddXP(%d): xp=%d not in [0, %d)", amount, p.XP, p.XPForNext)
		}
	}

	before := *p
	svc.AddXP(-100)
	if *p != before {
		t.Fatalf("negative award mutated player: %+v", *p)
	}
}

func TestLevelBadgesMonotonic(t *testing.T) {
	svc, _ := newTestService(t)

	svc.AddXP(200000) // enough for the 5/10/20 thresholds, not for 30
	badges := svc.State().Achievements.LevelBadges
	want := []string{"Bronze", "Silver", "Gold"}
	if len(badges) != len(want) {
		t.Fatalf("badges=%v, want %v", badges, want)
	}
	for i := range want {
		if badges[i] != want[i] {
			t.Fatalf("badges=%v, want %v", badges, want)
		}
	}
}

func TestCompleteTaskRewards(t *testing.T) {
	cases := []struct {
		diff        Difficulty
		wantXP      int
		wantMinutes int
	}{
		{DifficultyNoob, 10, 1},
		{DifficultyNormal, 15, 2},
		{DifficultyHardcore, 25, 3},
		{DifficultyHoellenfeuer, 40, 4},
	}
	for _, tc := range cases {
		svc, _ := newTestService(t)
		res, err := svc.CompleteTask("write tests", tc.diff)
		if err != nil {
			t.Fatalf("CompleteTask(%s): %v", tc.diff, err)
		}
		if res.XPGained != tc.wantXP {
			t.Fatalf("%s: xp=%d, want %d", tc.diff, res.XPGained, tc.wantXP)
		}
		if res.MinutesGained != tc.wantMinutes {
			t.Fatalf("%s: minutes=%d, want %d", tc.diff, res.MinutesGained, tc.wantMinutes)
		}
		if got := svc.State().Tasks.Counts[string(tc.diff)]; got != 1 {
			t.Fatalf("%s: count=%d, want 1", tc.diff, got)
		}
		if got := len(svc.State().Tasks.Log); got != 1 {
			t.Fatalf("%s: log entries=%d, want 1", tc.diff, got)
		}
	}
}

func TestCompleteTaskHardcoreBonus(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.EnableHardcore(); err != nil {
		t.Fatalf("EnableHardcore: %v", err)
	}

	res, err := svc.CompleteTask("dishes", DifficultyNormal)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res.XPGained != 19 { // round(10 * 1.5 * 1.25)
		t.Fatalf("hardcore xp=%d, want 19", res.XPGained)
	}
	if res.MinutesGained != 2 { // minutes are not affected by hardcore
		t.Fatalf("hardcore minutes=%d, want 2", res.MinutesGained)
	}
}

func TestCompleteTaskEmptyTitle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CompleteTask("   ", DifficultyNoob)
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("err=%v, want ErrEmptyTitle", err)
	}
	if svc.TotalTasks() != 0 {
		t.Fatalf("rejected task mutated counts")
	}
	if svc.State().Player.XP != 0 {
		t.Fatalf("rejected task granted XP")
	}
}

func TestSpecialAchievementMilestones(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 9; i++ {
		if _, err := svc.CompleteTask("grind", DifficultyNoob); err != nil {
			t.Fatalf("CompleteTask #%d: %v", i+1, err)
		}
	}
	if n := len(svc.State().Achievements.Special); n != 0 {
		t.Fatalf("special achievements after 9 tasks: %d, want 0", n)
	}

	res, err := svc.CompleteTask("grind", DifficultyNoob)
	if err != nil {
		t.Fatalf("CompleteTask #10: %v", err)
	}
	if len(res.NewAchievements) != 1 || res.NewAchievements[0] != "Grinder 10" {
		t.Fatalf("NewAchievements=%v, want [Grinder 10]", res.NewAchievements)
	}

	// Already held: not granted twice.
	if _, err := svc.CompleteTask("grind", DifficultyNoob); err != nil {
		t.Fatalf("CompleteTask #11: %v", err)
	}
	if n := len(svc.State().Achievements.Special); n != 1 {
		t.Fatalf("special achievements after 11 tasks: %d, want 1", n)
	}
}

func TestCheckInSameDayIsNoop(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CheckIn()
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if first.Already || first.Streak != 1 {
		t.Fatalf("first check-in: %+v", first)
	}

	second, err := svc.CheckIn()
	if err != nil {
		t.Fatalf("CheckIn #2: %v", err)
	}
	if !second.Already || second.Streak != 1 {
		t.Fatalf("second check-in same day: %+v", second)
	}
}

func TestCheckInStreakGrowsAndResets(t *testing.T) {
	svc, clock := newTestService(t)

	for day := 1; day <= 3; day++ {
		res, err := svc.CheckIn()
		if err != nil {
			t.Fatalf("CheckIn day %d: %v", day, err)
		}
		if res.Streak != day {
			t.Fatalf("day %d: streak=%d", day, res.Streak)
		}
		if day == 3 && !res.Bonus {
			t.Fatalf("no streak bonus at 3 days")
		}
		clock.advance(24 * time.Hour)
	}

	bankAfterBonus := svc.State().Player.MinutesBank
	if bankAfterBonus < StreakBonusMinutes {
		t.Fatalf("streak bonus minutes not credited, bank=%d", bankAfterBonus)
	}

	// Skip two days: streak resets to 1.
	clock.advance(2 * 24 * time.Hour)
	res, err := svc.CheckIn()
	if err != nil {
		t.Fatalf("CheckIn after gap: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("streak after gap=%d, want 1", res.Streak)
	}
}

func TestDailyQuestOncePerDay(t *testing.T) {
	svc, clock := newTestService(t)

	res, err := svc.ClaimDailyQuest("Power-Up Workout")
	if err != nil {
		t.Fatalf("ClaimDailyQuest: %v", err)
	}
	if res.Already || res.XP != 30 || res.Minutes != 5 {
		t.Fatalf("claim result: %+v", res)
	}

	again, err := svc.ClaimDailyQuest("Power-Up Workout")
	if err != nil {
		t.Fatalf("ClaimDailyQuest #2: %v", err)
	}
	if !again.Already {
		t.Fatalf("same-day claim paid twice")
	}

	clock.advance(24 * time.Hour)
	next, err := svc.ClaimDailyQuest("Power-Up Workout")
	if err != nil {
		t.Fatalf("ClaimDailyQuest next day: %v", err)
	}
	if next.Already {
		t.Fatalf("next-day claim rejected")
	}
}

func TestWeeklyQuestOncePerWeek(t *testing.T) {
	svc, clock := newTestService(t)

	if _, err := svc.ClaimWeeklyQuest("NoPo Weekly"); err != nil {
		t.Fatalf("ClaimWeeklyQuest: %v", err)
	}

	// Two days later, same ISO week.
	clock.advance(2 * 24 * time.Hour)
	again, err := svc.ClaimWeeklyQuest("NoPo Weekly")
	if err != nil {
		t.Fatalf("ClaimWeeklyQuest same week: %v", err)
	}
	if !again.Already {
		t.Fatalf("same-week claim paid twice")
	}

	clock.advance(7 * 24 * time.Hour)
	next, err := svc.ClaimWeeklyQuest("NoPo Weekly")
	if err != nil {
		t.Fatalf("ClaimWeeklyQuest next week: %v", err)
	}
	if next.Already {
		t.Fatalf("next-week claim rejected")
	}
}

func TestClaimUnknownQuest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ClaimQuest("Slay the Dragon")
	var unknown UnknownQuestError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want UnknownQuestError", err)
	}
}

func TestHardcoreIsOneWay(t *testing.T) {
	svc, _ := newTestService(t)

	enabled, err := svc.EnableHardcore()
	if err != nil || !enabled {
		t.Fatalf("EnableHardcore: enabled=%v err=%v", enabled, err)
	}
	enabled, err = svc.EnableHardcore()
	if err != nil || enabled {
		t.Fatalf("second EnableHardcore: enabled=%v err=%v", enabled, err)
	}
	if !svc.State().Meta.Hardcore {
		t.Fatalf("hardcore flag lost")
	}
}

func TestGameOverAndRespawn(t *testing.T) {
	svc, clock := newTestService(t)

	if _, err := svc.CompleteTask("before the fall", DifficultyHoellenfeuer); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	clock.advance(8 * 24 * time.Hour)
	if !svc.CheckGameOver() {
		t.Fatalf("expected dead after 8 days")
	}

	var gameOver GameOverError
	if _, err := svc.CompleteTask("too late", DifficultyNoob); !errors.As(err, &gameOver) {
		t.Fatalf("CompleteTask on dead save: err=%v, want GameOverError", err)
	}
	if _, err := svc.CheckIn(); !errors.As(err, &gameOver) {
		t.Fatalf("CheckIn on dead save: err=%v, want GameOverError", err)
	}

	svc.Respawn()
	st := svc.State()
	if st.Meta.Dead {
		t.Fatalf("still dead after respawn")
	}
	if st.Meta.Version != storage.Version {
		t.Fatalf("version=%q, want %q", st.Meta.Version, storage.Version)
	}
	if st.Player.Level != 1 || st.Player.XP != 0 || st.Player.XPForNext != 100 {
		t.Fatalf("player not reset: %+v", st.Player)
	}
	if len(st.Tasks.Log) != 0 || svc.TotalTasks() != 0 {
		t.Fatalf("task log survived respawn")
	}
	if len(st.Achievements.LevelBadges) != 0 || len(st.Achievements.Special) != 0 {
		t.Fatalf("achievements survived respawn")
	}
	for name, q := range st.Quests.Daily {
		if q.DoneOn != nil {
			t.Fatalf("daily quest %q marker survived respawn", name)
		}
	}

	// A respawned save plays again.
	if _, err := svc.CompleteTask("fresh start", DifficultyNoob); err != nil {
		t.Fatalf("CompleteTask after respawn: %v", err)
	}
}

func TestTouchLastOpenedSkipsDeadSave(t *testing.T) {
	svc, clock := newTestService(t)

	clock.advance(8 * 24 * time.Hour)
	svc.CheckGameOver()
	before := svc.State().Meta.LastOpened
	svc.TouchLastOpened()
	if svc.State().Meta.LastOpened != before {
		t.Fatalf("dead save's last_opened was touched")
	}
}
