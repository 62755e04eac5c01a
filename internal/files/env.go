package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the folder under the user's home directory holding
	// the timer state, settings, and log.
	DefaultDirName = ".worktimer"

	// HomeEnv overrides the data directory when set to a non-empty value.
	HomeEnv = "WORKTIMER_HOME"
)

// ResolveBasePath determines where worktimer keeps its files, defaulting to
// ~/.worktimer. Exporting WORKTIMER_HOME moves it elsewhere.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
