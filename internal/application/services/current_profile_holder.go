package services

import (
	"log/slog"
	"sync"

	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// Ensure interface compliance
var _ ports.CurrentProfileStore = (*CurrentProfileHolder)(nil)

// CurrentProfileHolder holds the active profile and notifies observers of every Set.
//
// Set calls are serialized; a Set swaps the slot atomically and then runs all
// observers, in subscription order, before returning. Observers are notified
// on every Set, including when the new profile equals the old one.
// Get may run concurrently with a Set that is still notifying and then
// already sees the new value.
type CurrentProfileHolder struct {
	logger    *slog.Logger
	current   *entities.Profile
	observers []subscription
	setMu     sync.Mutex
	mu        sync.RWMutex
}

type subscription struct {
	observer ports.ProfileObserver
	id       values.SubscriptionID
}

// NewCurrentProfileHolder creates an empty holder.
func NewCurrentProfileHolder(logger *slog.Logger) *CurrentProfileHolder {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurrentProfileHolder{logger: logger}
}

// Get returns the current profile, or nil.
func (h *CurrentProfileHolder) Get() *entities.Profile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Set replaces the current profile and notifies observers.
// Calling Set from inside an observer deadlocks.
func (h *CurrentProfileHolder) Set(profile *entities.Profile) {
	h.setMu.Lock()
	defer h.setMu.Unlock()

	h.mu.Lock()
	change := entities.ProfileChange{Old: h.current, New: profile}
	h.current = profile
	observers := make([]subscription, len(h.observers))
	copy(observers, h.observers)
	h.mu.Unlock()

	h.logger.Debug("current profile set",
		"old_id", profileIDAttr(change.Old),
		"new_id", profileIDAttr(change.New),
		"changed", change.Changed(),
		"observers", len(observers))

	for _, sub := range observers {
		h.notify(sub, change)
	}
}

// Subscribe registers an observer for subsequent Set calls.
func (h *CurrentProfileHolder) Subscribe(observer ports.ProfileObserver) values.SubscriptionID {
	id := values.NewSubscriptionID()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, subscription{id: id, observer: observer})
	return id
}

// Unsubscribe removes an observer registered with Subscribe.
func (h *CurrentProfileHolder) Unsubscribe(id values.SubscriptionID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, sub := range h.observers {
		if sub.id.Equals(id) {
			h.observers = append(h.observers[:i:i], h.observers[i+1:]...)
			return true
		}
	}
	return false
}

// notify runs one observer, isolating the others from its panics.
func (h *CurrentProfileHolder) notify(sub subscription, change entities.ProfileChange) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("profile observer panicked",
				"subscription", sub.id.String(),
				"panic", r)
		}
	}()
	sub.observer(change)
}

func profileIDAttr(p *entities.Profile) string {
	if p == nil {
		return ""
	}
	return p.ID().String()
}
