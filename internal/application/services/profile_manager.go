package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

// ProfileManager couples the current profile store with a persistent cache.
type ProfileManager struct {
	store  ports.CurrentProfileStore
	cache  ports.ProfileCache
	logger *slog.Logger
	loads  singleflight.Group
}

// NewProfileManager creates a manager. cache may be nil, in which case
// nothing is persisted and LoadCurrentProfile finds nothing.
func NewProfileManager(store ports.CurrentProfileStore, cache ports.ProfileCache, logger *slog.Logger) *ProfileManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileManager{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Store returns the underlying current profile store.
func (m *ProfileManager) Store() ports.CurrentProfileStore {
	return m.store
}

// CurrentProfile returns the active profile, or nil.
func (m *ProfileManager) CurrentProfile() *entities.Profile {
	return m.store.Get()
}

// SetCurrentProfile makes profile current. With writeToCache the cache is
// updated first (cleared for a nil profile); a cache failure leaves the
// current profile untouched.
func (m *ProfileManager) SetCurrentProfile(ctx context.Context, profile *entities.Profile, writeToCache bool) error {
	if writeToCache && m.cache != nil {
		if profile == nil {
			if err := m.cache.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear cached profile: %w", err)
			}
		} else if err := m.cache.Save(ctx, profile); err != nil {
			return fmt.Errorf("failed to cache profile: %w", err)
		}
	}

	m.store.Set(profile)
	return nil
}

// LoadCurrentProfile restores the cached profile into the store without
// writing it back. It reports whether a profile was found.
// Concurrent calls share a single cache read.
func (m *ProfileManager) LoadCurrentProfile(ctx context.Context) (bool, error) {
	if m.cache == nil {
		return false, nil
	}

	// The shared read must not fail for every caller because the first one gave up.
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := m.loads.Do("current", func() (any, error) {
		profile, err := m.cache.Load(loadCtx)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			m.store.Set(profile)
		}
		return profile, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to load cached profile: %w", err)
	}

	profile, _ := v.(*entities.Profile)
	m.logger.Debug("loaded cached profile", "found", profile != nil, "shared", shared)
	return profile != nil, nil
}
