package services

import (
	"sync"

	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// ProfileTracker calls a function with the old and new profile whenever the
// current profile is set, while tracking is on.
type ProfileTracker struct {
	store    ports.CurrentProfileStore
	onChange func(old, current *entities.Profile)
	subID    values.SubscriptionID
	mu       sync.Mutex
	tracking bool
}

// NewProfileTracker creates a tracker and starts tracking immediately.
// A nil onChange is replaced by a no-op.
func NewProfileTracker(store ports.CurrentProfileStore, onChange func(old, current *entities.Profile)) *ProfileTracker {
	if onChange == nil {
		onChange = func(_, _ *entities.Profile) {}
	}
	t := &ProfileTracker{
		store:    store,
		onChange: onChange,
	}
	t.StartTracking()
	return t
}

// StartTracking subscribes to changes. It is a no-op if already tracking.
func (t *ProfileTracker) StartTracking() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking {
		return
	}
	t.subID = t.store.Subscribe(func(change entities.ProfileChange) {
		t.onChange(change.Old, change.New)
	})
	t.tracking = true
}

// StopTracking unsubscribes. It is a no-op if not tracking.
func (t *ProfileTracker) StopTracking() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return
	}
	t.store.Unsubscribe(t.subID)
	t.tracking = false
}

// IsTracking reports whether the tracker is subscribed.
func (t *ProfileTracker) IsTracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracking
}
