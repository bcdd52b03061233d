package values

import (
	"fmt"

	"github.com/google/uuid"
)

// SubscriptionID identifies one observer registration on the current profile holder.
type SubscriptionID struct {
	value uuid.UUID
}

// NewSubscriptionID creates a new random subscription ID
func NewSubscriptionID() SubscriptionID {
	return SubscriptionID{value: uuid.New()}
}

// ParseSubscriptionID parses a string into a SubscriptionID
func ParseSubscriptionID(s string) (SubscriptionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SubscriptionID{}, fmt.Errorf("invalid subscription ID: %w", err)
	}
	return SubscriptionID{value: id}, nil
}

// String returns the string representation
func (s SubscriptionID) String() string {
	return s.value.String()
}

// IsZero returns true if this is the zero value
func (s SubscriptionID) IsZero() bool {
	return s.value == uuid.Nil
}

// Equals checks if two SubscriptionIDs are equal
func (s SubscriptionID) Equals(other SubscriptionID) bool {
	return s.value == other.value
}
