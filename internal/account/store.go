package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/faizmokh/worktimer/internal/files"
)

// Store persists a Snapshot. Load returns ErrNoSnapshot when nothing has been
// saved yet.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

// FileStore keeps the snapshot as JSON in the data directory.
type FileStore struct {
	path string
}

// NewFileStore stores the snapshot at the manager's state path.
func NewFileStore(manager *files.Manager) *FileStore {
	return &FileStore{path: manager.StatePath()}
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and validates the snapshot file.
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return decodeSnapshot(data)
}

// Save atomically replaces the snapshot file.
func (s *FileStore) Save(snap Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	return files.WriteFileAtomic(s.path, data)
}

// record is the on-disk shape. TotalSeconds is the older name of
// accumulated_seconds and is only ever read.
type record struct {
	WeekStart          *stamp   `json:"week_start"`
	AccumulatedSeconds *float64 `json:"accumulated_seconds,omitempty"`
	TotalSeconds       *float64 `json:"total_seconds,omitempty"`
	IsRunning          bool     `json:"is_running"`
	StartTime          *stamp   `json:"start_time"`
}

func encodeSnapshot(snap Snapshot) ([]byte, error) {
	week := stamp(snap.WeekStart)
	acc := snap.AccumulatedSeconds
	rec := record{
		WeekStart:          &week,
		AccumulatedSeconds: &acc,
		IsRunning:          snap.Running,
	}
	if snap.Running {
		start := stamp(snap.SessionStart)
		rec.StartTime = &start
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	if rec.WeekStart == nil {
		return Snapshot{}, fmt.Errorf("%w: missing week_start", ErrCorruptSnapshot)
	}

	acc := rec.AccumulatedSeconds
	if acc == nil {
		acc = rec.TotalSeconds
	}
	if acc == nil {
		return Snapshot{}, fmt.Errorf("%w: missing accumulated_seconds", ErrCorruptSnapshot)
	}
	if *acc < 0 || math.IsNaN(*acc) || math.IsInf(*acc, 0) {
		return Snapshot{}, fmt.Errorf("%w: accumulated_seconds %v out of range", ErrCorruptSnapshot, *acc)
	}

	snap := Snapshot{
		WeekStart:          time.Time(*rec.WeekStart),
		AccumulatedSeconds: *acc,
		Running:            rec.IsRunning,
	}
	if rec.IsRunning {
		if rec.StartTime == nil {
			return Snapshot{}, fmt.Errorf("%w: running without start_time", ErrCorruptSnapshot)
		}
		snap.SessionStart = time.Time(*rec.StartTime)
	}
	return snap, nil
}

// stamp is a timestamp written as RFC 3339. On read it also accepts
// timestamps without an offset, which are taken as local time.
type stamp time.Time

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (s stamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(s).Format(time.RFC3339Nano))
}

func (s *stamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		*s = stamp(t.In(time.Local))
		return nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			*s = stamp(t)
			return nil
		}
	}
	return fmt.Errorf("timestamp %q is not ISO-8601", raw)
}
