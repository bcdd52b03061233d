// Package memory provides in-memory implementations of application ports.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

// Ensure interface compliance
var _ ports.ProfileCache = (*ProfileCache)(nil)

// ProfileCache keeps the current profile as a binary snapshot in memory.
// Useful for testing and ephemeral sessions.
type ProfileCache struct {
	snapshot []byte
	mu       sync.RWMutex
}

// NewProfileCache creates an empty in-memory cache.
func NewProfileCache() *ProfileCache {
	return &ProfileCache{}
}

// Load decodes the stored snapshot, or returns nil if none is stored.
func (c *ProfileCache) Load(_ context.Context) (*entities.Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return nil, nil
	}
	p, err := entities.FromBinarySnapshot(c.snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return p, nil
}

// Save stores a snapshot of profile.
func (c *ProfileCache) Save(_ context.Context, profile *entities.Profile) error {
	if profile == nil {
		return fmt.Errorf("cannot cache a nil profile")
	}
	snapshot := profile.ToBinarySnapshot()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
	return nil
}

// Clear drops the stored snapshot.
func (c *ProfileCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	return nil
}

// Snapshot returns a copy of the stored bytes, or nil.
func (c *ProfileCache) Snapshot() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return nil
	}
	return append([]byte(nil), c.snapshot...)
}
