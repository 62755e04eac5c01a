package account

import (
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by a Store that has nothing saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// ErrCorruptSnapshot marks stored content that could not be turned into a
// valid Snapshot.
var ErrCorruptSnapshot = errors.New("snapshot is corrupt")

// ErrStorageWrite matches any *WriteError.
var ErrStorageWrite = errors.New("state not saved")

// WriteError reports that a mutation was applied in memory but could not be
// made durable.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrStorageWrite, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrStorageWrite, e.Err}
}
