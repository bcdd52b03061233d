// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	apperrors "github.com/reglet-dev/profilekit/internal/application/errors"
	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/application/services"
	"github.com/reglet-dev/profilekit/internal/infrastructure/graph"
	"github.com/reglet-dev/profilekit/internal/infrastructure/output"
	"github.com/reglet-dev/profilekit/internal/infrastructure/persistence/file"
	"github.com/reglet-dev/profilekit/internal/infrastructure/persistence/memory"
	"github.com/reglet-dev/profilekit/internal/infrastructure/prompt"
	"github.com/reglet-dev/profilekit/internal/infrastructure/redaction"
	"github.com/reglet-dev/profilekit/internal/infrastructure/system"
	"github.com/reglet-dev/profilekit/internal/infrastructure/validation"
)

// Container holds all application dependencies.
type Container struct {
	holder           *services.CurrentProfileHolder
	manager          *services.ProfileManager
	formatterFactory ports.OutputFormatterFactory
	prompter         ports.ProfilePrompter
	pictureBuilder   *graph.PictureURIBuilder
	recordValidator  *validation.RecordValidator
	redactor         *redaction.Redactor
	systemCfg        *system.Config
	logger           *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	Prompter         ports.ProfilePrompter
	SystemConfigPath string
	// CachePath overrides the cache file path from the system config
	CachePath string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Prompter == nil {
		opts.Prompter = prompt.NewTerminalPrompter()
	}

	configPath := opts.SystemConfigPath
	if configPath == "" {
		configPath = system.DefaultConfigPath()
	}
	systemCfg, err := system.NewConfigLoader().Load(configPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system", "failed to load "+configPath, err)
	}
	if opts.CachePath != "" {
		systemCfg.Cache.Path = opts.CachePath
	}

	backend, err := systemCfg.Cache.GetBackend()
	if err != nil {
		return nil, apperrors.NewConfigurationError("cache", "invalid backend", err)
	}
	var cache ports.ProfileCache
	switch backend {
	case system.CacheBackendMemory:
		cache = memory.NewProfileCache()
	default:
		cache = file.NewProfileCache(systemCfg.Cache.Path)
	}
	opts.Logger.Debug("profile cache configured", "backend", backend, "path", systemCfg.Cache.Path)

	pictureBuilder, err := graph.NewPictureURIBuilder(systemCfg.Graph.BaseURL, systemCfg.Graph.APIVersion)
	if err != nil {
		return nil, apperrors.NewConfigurationError("graph", "invalid endpoint", err)
	}

	holder := services.NewCurrentProfileHolder(opts.Logger)
	manager := services.NewProfileManager(holder, cache, opts.Logger)

	return &Container{
		holder:           holder,
		manager:          manager,
		formatterFactory: output.NewFormatterFactory(),
		prompter:         opts.Prompter,
		pictureBuilder:   pictureBuilder,
		recordValidator:  validation.NewRecordValidator(),
		redactor: redaction.New(redaction.Config{
			QueryParams:     systemCfg.Redaction.QueryParams,
			HashMode:        systemCfg.Redaction.HashMode,
			Salt:            systemCfg.Redaction.Salt,
			DisableGitleaks: systemCfg.Redaction.DisableGitleaks,
		}),
		systemCfg: systemCfg,
		logger:    opts.Logger,
	}, nil
}

// CurrentProfile returns the current profile store.
func (c *Container) CurrentProfile() ports.CurrentProfileStore {
	return c.holder
}

// ProfileManager returns the profile manager.
func (c *Container) ProfileManager() *services.ProfileManager {
	return c.manager
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// Prompter returns the interactive profile prompter.
func (c *Container) Prompter() ports.ProfilePrompter {
	return c.prompter
}

// PictureURIBuilder returns the picture URI builder.
func (c *Container) PictureURIBuilder() *graph.PictureURIBuilder {
	return c.pictureBuilder
}

// RecordValidator returns the JSON record validator.
func (c *Container) RecordValidator() *validation.RecordValidator {
	return c.recordValidator
}

// Redactor returns the URI redactor for log output.
func (c *Container) Redactor() *redaction.Redactor {
	return c.redactor
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
