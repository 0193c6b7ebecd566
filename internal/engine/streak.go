package engine

type CheckInResult struct {
	Already bool
	Streak  int
	Bonus   bool
}

// CheckIn records the daily check-in. At most one check-in per calendar day
// counts; the second call is a no-op. A check-in the day after the previous
// one extends the streak, any gap resets it to 1. Streaks of exactly 3, 7 or
// 14 days pay a one-time bonus each time that value is reached.
func (s *Service) CheckIn() (*CheckInResult, error) {
	if err := s.guardAlive(); err != nil {
		return nil, err
	}

	p := &s.state.Player
	today := s.dayString(s.now())
	if p.LastCheckin != nil && *p.LastCheckin == today {
		return &CheckInResult{Already: true, Streak: p.StreakDays}, nil
	}

	if p.LastCheckin != nil && s.isYesterday(*p.LastCheckin) {
		p.StreakDays++
	} else {
		p.StreakDays = 1
	}
	p.LastCheckin = &today
	s.logf("Daily check-in! Streak: %d days", p.StreakDays)

	bonus := false
	switch p.StreakDays {
	case 3, 7, 14:
		s.AddXP(StreakBonusXP)
		p.MinutesBank += StreakBonusMinutes
		s.logf("Streak bonus! +%d XP, +%d min", StreakBonusXP, StreakBonusMinutes)
		bonus = true
	}

	return &CheckInResult{Streak: p.StreakDays, Bonus: bonus}, nil
}

// isYesterday reports whether the stored check-in date is exactly one
// calendar day before today. Unparseable dates count as a gap.
func (s *Service) isYesterday(day string) bool {
	prev, err := parseISO(day)
	if err != nil {
		return false
	}
	next := prev.AddDate(0, 0, 1)
	return s.dayString(next) == s.dayString(s.now())
}
