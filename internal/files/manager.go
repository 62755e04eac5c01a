package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	stateFileName  = "state.json"
	configFileName = "config.env"
	logFileName    = "worktimer.log"
)

// Manager centralizes where worktimer's files live on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.worktimer (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	} else {
		basePath, err = normalizePath(basePath)
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the data directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// StatePath is the timer snapshot.
func (m *Manager) StatePath() string {
	return filepath.Join(m.basePath, stateFileName)
}

// ConfigPath is the optional settings file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFileName)
}

// LogPath is where the structured log is appended.
func (m *Manager) LogPath() string {
	return filepath.Join(m.basePath, logFileName)
}

// EnsureBaseDir creates the data directory if it is missing.
func (m *Manager) EnsureBaseDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// WriteFileAtomic replaces path with data by writing a sibling temp file and
// renaming it over the target, so readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
