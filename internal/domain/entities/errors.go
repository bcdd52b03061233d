package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is matched by every MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed profile record")

	// ErrCorruptSnapshot is matched by every CorruptSnapshotError.
	ErrCorruptSnapshot = errors.New("corrupt profile snapshot")
)

// MalformedRecordError indicates a structured record could not be turned into a Profile.
type MalformedRecordError struct {
	Cause   error
	Key     string
	Message string
}

func (e *MalformedRecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed profile record: %s: %s: %v", e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed profile record: %s: %s", e.Key, e.Message)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// CorruptSnapshotError indicates a binary snapshot was truncated or ill-typed.
type CorruptSnapshotError struct {
	Cause   error
	Message string
	Offset  int
}

func (e *CorruptSnapshotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt profile snapshot at byte %d: %s: %v", e.Offset, e.Message, e.Cause)
	}
	return fmt.Sprintf("corrupt profile snapshot at byte %d: %s", e.Offset, e.Message)
}

func (e *CorruptSnapshotError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrCorruptSnapshot.
func (e *CorruptSnapshotError) Is(target error) bool {
	return target == ErrCorruptSnapshot
}
