package engine

import "sort"

type QuestResult struct {
	Name    string
	Already bool
	XP      int
	Minutes int
}

// QuestView is a read-only row for listing the catalog.
type QuestView struct {
	Name    string
	XP      int
	Minutes int
	Weekly  bool
	Done    bool
}

// ClaimDailyQuest pays out a daily quest reward at most once per calendar day.
func (s *Service) ClaimDailyQuest(name string) (*QuestResult, error) {
	if err := s.guardAlive(); err != nil {
		return nil, err
	}
	q, ok := s.state.Quests.Daily[name]
	if !ok {
		return nil, UnknownQuestError{Name: name}
	}

	today := s.dayString(s.now())
	if q.DoneOn != nil && *q.DoneOn == today {
		return &QuestResult{Name: name, Already: true}, nil
	}

	s.AddXP(q.XP)
	s.state.Player.MinutesBank += q.Minutes
	q.DoneOn = &today
	s.logf("Daily quest done: %s +%d XP, +%d min", name, q.XP, q.Minutes)
	return &QuestResult{Name: name, XP: q.XP, Minutes: q.Minutes}, nil
}

// ClaimWeeklyQuest pays out a weekly quest reward at most once per ISO week.
func (s *Service) ClaimWeeklyQuest(name string) (*QuestResult, error) {
	if err := s.guardAlive(); err != nil {
		return nil, err
	}
	q, ok := s.state.Quests.Weekly[name]
	if !ok {
		return nil, UnknownQuestError{Name: name}
	}

	week := weekID(s.now())
	if q.DoneOnWeek != nil && *q.DoneOnWeek == week {
		return &QuestResult{Name: name, Already: true}, nil
	}

	s.AddXP(q.XP)
	s.state.Player.MinutesBank += q.Minutes
	q.DoneOnWeek = &week
	s.logf("Weekly quest done: %s +%d XP, +%d min", name, q.XP, q.Minutes)
	return &QuestResult{Name: name, XP: q.XP, Minutes: q.Minutes}, nil
}

// ClaimQuest resolves a name against the daily catalog first, then the weekly
// one. Quest names are unique across both.
func (s *Service) ClaimQuest(name string) (*QuestResult, error) {
	if _, ok := s.state.Quests.Daily[name]; ok {
		return s.ClaimDailyQuest(name)
	}
	if _, ok := s.state.Quests.Weekly[name]; ok {
		return s.ClaimWeeklyQuest(name)
	}
	return nil, UnknownQuestError{Name: name}
}

// Quests lists the catalog, dailies first, each group sorted by name. Done
// reflects eligibility for the current day/week, not the stored marker alone.
func (s *Service) Quests() []QuestView {
	today := s.dayString(s.now())
	week := weekID(s.now())

	var out []QuestView
	for name, q := range s.state.Quests.Daily {
		out = append(out, QuestView{
			Name:    name,
			XP:      q.XP,
			Minutes: q.Minutes,
			Done:    q.DoneOn != nil && *q.DoneOn == today,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	start := len(out)
	for name, q := range s.state.Quests.Weekly {
		out = append(out, QuestView{
			Name:    name,
			XP:      q.XP,
			Minutes: q.Minutes,
			Weekly:  true,
			Done:    q.DoneOnWeek != nil && *q.DoneOnWeek == week,
		})
	}
	weekly := out[start:]
	sort.Slice(weekly, func(i, j int) bool { return weekly[i].Name < weekly[j].Name })
	return out
}
