package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// SaveFileName is shared by the local save and the cloud mirror so either copy
// can be picked up by the other platform's install.
const SaveFileName = "retro_task_rpg_state.json"

// DefaultSaveDir returns the default local save directory.
func DefaultSaveDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".taskrpg", "save"), nil
}

// DefaultCloudDir returns the conventional cloud-drive documents folder for
// the current OS, or "" when the platform has no known cloud-synced folder.
// The directory is not required to exist; the store treats a missing cloud
// side as "mirror unavailable".
func DefaultCloudDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "iCloudDrive", "Documents", "RetroTaskRPG")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Mobile Documents", "com~apple~CloudDocs", "Documents", "RetroTaskRPG")
	default:
		// Linux / servers: local save only.
		return ""
	}
}
