package ports

import (
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// ProfileObserver receives current-profile changes.
// Observers run synchronously inside Set and must not call Set themselves.
type ProfileObserver func(change entities.ProfileChange)

// CurrentProfileStore is the single slot holding the active profile, or nil.
type CurrentProfileStore interface {
	// Get returns the current profile, or nil when none is set.
	Get() *entities.Profile

	// Set replaces the current profile (nil clears it) and notifies every
	// observer before returning.
	Set(profile *entities.Profile)

	// Subscribe registers an observer for subsequent Set calls.
	Subscribe(observer ProfileObserver) values.SubscriptionID

	// Unsubscribe removes an observer. It reports whether the ID was registered.
	Unsubscribe(id values.SubscriptionID) bool
}
