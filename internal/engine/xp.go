package engine

import "math"

// AddXP credits XP and runs the level-up loop: while xp reaches the current
// threshold, consume it, raise the level, grow the threshold by
// XPGrowthFactor (ceiling-rounded) and grant the per-level minute bonus.
// Returns the number of levels gained. Non-positive amounts are ignored, so
// the invariant xp < xp_for_next holds on return.
func (s *Service) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p := &s.state.Player
	p.XP += amount

	leveled := 0
	for p.XP >= p.XPForNext {
		p.XP -= p.XPForNext
		p.Level++
		p.XPForNext = int(math.Ceil(float64(p.XPForNext) * XPGrowthFactor))
		p.MinutesBank += LevelMinutesBonus
		leveled++
	}
	if leveled > 0 {
		s.logf("Level up x%d! +%d min play time", leveled, LevelMinutesBonus*leveled)
		s.awardLevelBadges()
	}
	return leveled
}

// awardLevelBadges grants every badge whose threshold the current level has
// reached and that is not already held. Badges are never removed.
func (s *Service) awardLevelBadges() {
	held := make(map[string]bool, len(s.state.Achievements.LevelBadges))
	for _, b := range s.state.Achievements.LevelBadges {
		held[b] = true
	}
	for _, badge := range levelBadges {
		if s.state.Player.Level >= badge.Level && !held[badge.Name] {
			s.state.Achievements.LevelBadges = append(s.state.Achievements.LevelBadges, badge.Name)
			s.logf("Badge unlocked: %s", badge.Name)
		}
	}
}
