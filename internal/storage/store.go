package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store reads and writes the save document at two locations: a local path
// (always) and a cloud-synced mirror (when available). All I/O failures are
// reported as warnings, never as errors; a save that cannot be read is the
// same as no save at all.
type Store struct {
	localPath string
	cloudPath string

	playerName string
	now        func() time.Time
}

func NewStore(localDir, cloudDir, playerName string) *Store {
	s := &Store{
		localPath:  filepath.Join(localDir, SaveFileName),
		playerName: playerName,
		now:        time.Now,
	}
	if cloudDir != "" {
		s.cloudPath = filepath.Join(cloudDir, SaveFileName)
	}
	return s
}

func (s *Store) LocalPath() string { return s.localPath }

// CloudPath returns "" when no cloud mirror is configured.
func (s *Store) CloudPath() string { return s.cloudPath }

// Load returns the current game state, preferring the cloud mirror over the
// local copy, and a fresh default state when neither is readable. Warnings
// describe anything that went wrong along the way.
func (s *Store) Load() (*GameState, []string) {
	var warnings []string

	if s.cloudPath != "" {
		if st, warn := readDocument(s.cloudPath); st != nil {
			st.normalize()
			return st, warnings
		} else if warn != "" {
			warnings = append(warnings, warn)
		}
	}

	if st, warn := readDocument(s.localPath); st != nil {
		st.normalize()
		return st, warnings
	} else if warn != "" {
		warnings = append(warnings, warn)
	}

	return DefaultState(s.playerName, s.now()), warnings
}

// Save writes the local copy unconditionally and mirrors to the cloud path
// when one is configured. Failures are returned as warnings.
func (s *Store) Save(st *GameState) []string {
	var warnings []string

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		// A marshal failure means the in-memory state is broken; there is
		// nothing sensible to write anywhere.
		return []string{fmt.Sprintf("could not encode save: %v", err)}
	}

	if warn := writeDocument(s.localPath, data); warn != "" {
		warnings = append(warnings, warn)
	}
	if s.cloudPath != "" {
		if warn := writeDocument(s.cloudPath, data); warn != "" {
			warnings = append(warnings, warn)
		}
	}
	return warnings
}

// readDocument returns (nil, "") for a missing file, (nil, warning) for an
// unreadable or malformed one, and the decoded state on success.
func readDocument(path string) (*GameState, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ""
		}
		return nil, fmt.Sprintf("could not read %s: %v", path, err)
	}
	var st GameState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Sprintf("could not parse %s: %v", path, err)
	}
	return &st, ""
}

func writeDocument(path string, data []byte) string {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Sprintf("could not create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Sprintf("could not write %s: %v", path, err)
	}
	return ""
}
