// Package values contains domain value objects that encapsulate
// primitive types with validation.
package values

import (
	"encoding/json"
	"strings"
)

// ProfileID is the stable identity key of a profile.
// Enforces a non-blank value; the value is stored exactly as given.
type ProfileID struct {
	value string
}

// NewProfileID creates a ProfileID with validation
func NewProfileID(id string) (ProfileID, error) {
	if strings.TrimSpace(id) == "" {
		return ProfileID{}, NewInvalidArgumentError("id", "profile id cannot be empty", nil)
	}
	return ProfileID{value: id}, nil
}

// MustNewProfileID creates a ProfileID or panics
func MustNewProfileID(id string) ProfileID {
	pid, err := NewProfileID(id)
	if err != nil {
		panic(err)
	}
	return pid
}

// String returns the string representation
func (p ProfileID) String() string {
	return p.value
}

// IsEmpty returns true if this is the zero value
func (p ProfileID) IsEmpty() bool {
	return p.value == ""
}

// Equals checks if two profile IDs are equal
func (p ProfileID) Equals(other ProfileID) bool {
	return p.value == other.value
}

// MarshalJSON implements json.Marshaler
func (p ProfileID) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *ProfileID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return NewInvalidArgumentError("id", "profile id must be a JSON string", err)
	}

	id, err := NewProfileID(s)
	if err != nil {
		return err
	}
	*p = id
	return nil
}
