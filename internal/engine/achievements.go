package engine

import "fmt"

// Achievement is one row of the catalog with its earned status. Earned
// status comes from the stored monotonic sets, so nothing ever un-earns.
type Achievement struct {
	Name        string
	Description string
	Earned      bool
}

// AchievementCatalog lists every level badge and special achievement the
// player can hold, earned or not, in ladder order.
func (s *Service) AchievementCatalog() []Achievement {
	heldBadges := make(map[string]bool, len(s.state.Achievements.LevelBadges))
	for _, b := range s.state.Achievements.LevelBadges {
		heldBadges[b] = true
	}
	heldSpecial := make(map[string]bool, len(s.state.Achievements.Special))
	for _, a := range s.state.Achievements.Special {
		heldSpecial[a] = true
	}

	out := make([]Achievement, 0, len(levelBadges)+len(specialMilestones))
	for _, badge := range levelBadges {
		out = append(out, Achievement{
			Name:        badge.Name,
			Description: fmt.Sprintf("Reach level %d", badge.Level),
			Earned:      heldBadges[badge.Name],
		})
	}
	for _, m := range specialMilestones {
		name := fmt.Sprintf("Grinder %d", m)
		out = append(out, Achievement{
			Name:        name,
			Description: fmt.Sprintf("Complete %d tasks", m),
			Earned:      heldSpecial[name],
		})
	}
	return out
}

// CountEarned returns how many achievements have been earned.
func (s *Service) CountEarned() int {
	return len(s.state.Achievements.LevelBadges) + len(s.state.Achievements.Special)
}
