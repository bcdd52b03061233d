// Package file provides file-based persistence for the current profile.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/infrastructure/validation"
)

// Ensure interface compliance
var _ ports.ProfileCache = (*ProfileCache)(nil)

// ProfileCache stores the current profile as a JSON structured record on disk.
type ProfileCache struct {
	validator *validation.RecordValidator
	path      string
}

// NewProfileCache creates a cache backed by the file at path.
func NewProfileCache(path string) *ProfileCache {
	return &ProfileCache{
		path:      path,
		validator: validation.NewRecordValidator(),
	}
}

// Path returns the path of the cache file.
func (c *ProfileCache) Path() string {
	return c.path
}

// Load reads the cached profile. A missing file means no profile is cached.
func (c *ProfileCache) Load(_ context.Context) (*entities.Profile, error) {
	//nolint:gosec // G304: path comes from system config
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile cache: %w", err)
	}

	p, err := c.validator.DecodeProfile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile cache %s: %w", c.path, err)
	}
	return p, nil
}

// Save writes profile to the cache file, replacing it atomically.
func (c *ProfileCache) Save(_ context.Context, profile *entities.Profile) error {
	if profile == nil {
		return fmt.Errorf("cannot cache a nil profile")
	}

	data, err := profile.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	dir := filepath.Dir(c.path)
	//nolint:gosec // G301: 0o755 is standard for user config directories
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write profile cache: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set cache permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("failed to replace profile cache: %w", err)
	}
	return nil
}

// Clear removes the cache file if it exists.
func (c *ProfileCache) Clear(_ context.Context) error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove profile cache: %w", err)
	}
	return nil
}
