// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

// ProfileCache persists the current profile between process runs.
type ProfileCache interface {
	// Load returns the cached profile, or nil if nothing is cached.
	Load(ctx context.Context) (*entities.Profile, error)

	// Save replaces the cached profile.
	Save(ctx context.Context, profile *entities.Profile) error

	// Clear removes any cached profile. Clearing an empty cache is not an error.
	Clear(ctx context.Context) error
}

// OutputFormatter formats a profile for output.
// A nil profile means "no profile" and is rendered as such.
type OutputFormatter interface {
	Format(profile *entities.Profile) error
}

// FormatterOptions contains options for output formatters.
type FormatterOptions struct {
	Indent bool
}

// OutputFormatterFactory creates output formatters.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}

// ProfilePrompter asks a user for profile fields interactively.
type ProfilePrompter interface {
	IsInteractive() bool
	PromptForProfile(ctx context.Context, defaults entities.ProfileParams) (entities.ProfileParams, error)
}
