// Package system provides infrastructure for system-level configuration.
// This covers the config file (~/.profilekit/config.yaml) that selects the
// profile cache and the Graph API endpoint.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/profilekit/internal/infrastructure/graph"
)

// Config represents the global configuration file (~/.profilekit/config.yaml).
type Config struct {
	Cache     CacheConfig     `yaml:"cache"`
	Graph     GraphConfig     `yaml:"graph"`
	Redaction RedactionConfig `yaml:"redaction"`
}

// CacheConfig selects where the current profile is persisted.
type CacheConfig struct {
	// Backend is "file" (default) or "memory"
	Backend string `yaml:"backend"`

	// Path of the cache file for the file backend
	Path string `yaml:"path"`
}

// GraphConfig configures Graph API URI building.
type GraphConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
}

// RedactionConfig configures masking of secrets in logged URIs.
type RedactionConfig struct {
	// Salt for hash mode
	Salt string `yaml:"salt"`

	// Extra query parameters to mask besides access_token
	QueryParams []string `yaml:"query_params"`

	// HashMode replaces secrets with a salted hash instead of [REDACTED]
	HashMode bool `yaml:"hash_mode"`

	// DisableGitleaks skips the gitleaks rule set and keeps only built-in patterns
	DisableGitleaks bool `yaml:"disable_gitleaks"`
}

// CacheBackend names a profile cache implementation.
type CacheBackend string

const (
	// CacheBackendFile stores the profile as a JSON record on disk (default)
	CacheBackendFile CacheBackend = "file"

	// CacheBackendMemory keeps the profile for the lifetime of the process
	CacheBackendMemory CacheBackend = "memory"
)

// GetBackend returns the configured backend, defaulting to file.
func (c *CacheConfig) GetBackend() (CacheBackend, error) {
	switch c.Backend {
	case "", "file":
		return CacheBackendFile, nil
	case "memory":
		return CacheBackendMemory, nil
	default:
		return "", fmt.Errorf("unknown cache backend %q (supported: file, memory)", c.Backend)
	}
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultDir returns ~/.profilekit, or .profilekit when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".profilekit"
	}
	return filepath.Join(home, ".profilekit")
}

// DefaultConfigPath returns the default location of the config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// DefaultConfig returns a Config with safe defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend: string(CacheBackendFile),
			Path:    filepath.Join(DefaultDir(), "current_profile.json"),
		},
		Graph: GraphConfig{
			BaseURL:    graph.DefaultBaseURL,
			APIVersion: graph.DefaultAPIVersion,
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig(). Fields left empty in
// the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if _, err := config.Cache.GetBackend(); err != nil {
		return nil, err
	}
	return config, nil
}
