package engine

import "github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"

// EnableHardcore turns on the permanent hardcore XP bonus. The flag is
// one-way; only a respawn clears it. Returns false if already enabled.
func (s *Service) EnableHardcore() (bool, error) {
	if err := s.guardAlive(); err != nil {
		return false, err
	}
	if s.state.Meta.Hardcore {
		return false, nil
	}
	s.state.Meta.Hardcore = true
	s.logf("Hardcore mode enabled!")
	return true, nil
}

// CheckGameOver marks the save dead when last_opened is more than
// GameOverAfter in the past. An unparseable timestamp is ignored. Returns
// whether the save is dead afterwards.
func (s *Service) CheckGameOver() bool {
	last, err := parseISO(s.state.Meta.LastOpened)
	if err != nil {
		return s.state.Meta.Dead
	}
	if s.now().Sub(last) > GameOverAfter {
		s.state.Meta.Dead = true
	}
	return s.state.Meta.Dead
}

// TouchLastOpened stamps the activity marker that CheckGameOver measures
// against. Dead saves are left untouched so the game-over state survives a
// restart until the player respawns.
func (s *Service) TouchLastOpened() {
	if s.state.Meta.Dead {
		return
	}
	s.state.Meta.LastOpened = s.now().Format(storage.ISOTime)
}

// Respawn resets the whole record to defaults, preserving only the save
// format version. Works on dead and living saves alike.
func (s *Service) Respawn() {
	version := s.state.Meta.Version
	if version == "" {
		version = storage.Version
	}
	fresh := storage.DefaultState("", s.now())
	fresh.Meta.Version = version
	*s.state = *fresh
	s.logf("Respawn! Back to the start.")
}
