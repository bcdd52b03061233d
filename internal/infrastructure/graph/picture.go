// Package graph builds Graph API URIs derived from a profile.
package graph

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/reglet-dev/profilekit/internal/domain/values"
)

const (
	// DefaultBaseURL is the Graph API host used when none is configured.
	DefaultBaseURL = "https://graph.facebook.com"

	// DefaultAPIVersion is the Graph API version used when none is configured.
	DefaultAPIVersion = "v18.0"

	migrationOverrides = "{october_2012:true}"
)

// PictureURIBuilder builds profile picture URIs.
type PictureURIBuilder struct {
	base       *url.URL
	apiVersion string
}

type pictureQuery struct {
	Height             int    `url:"height,omitempty"`
	Width              int    `url:"width,omitempty"`
	MigrationOverrides string `url:"migration_overrides"`
	AccessToken        string `url:"access_token,omitempty"`
}

// NewPictureURIBuilder creates a builder. Empty arguments fall back to the defaults.
func NewPictureURIBuilder(baseURL, apiVersion string) (*PictureURIBuilder, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid graph base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid graph base URL %q: scheme and host are required", baseURL)
	}
	return &PictureURIBuilder{base: base, apiVersion: apiVersion}, nil
}

// Build returns the picture URI for the profile id at the given size.
// Negative dimensions count as unspecified; at least one must be positive.
// accessToken is optional.
func (b *PictureURIBuilder) Build(id values.ProfileID, width, height int, accessToken string) (values.LinkURI, error) {
	if id.IsEmpty() {
		return values.LinkURI{}, values.NewInvalidArgumentError("id", "profile id cannot be empty", nil)
	}
	width = max(width, 0)
	height = max(height, 0)
	if width == 0 && height == 0 {
		return values.LinkURI{}, values.NewInvalidArgumentError("size", "either width or height must be greater than 0", nil)
	}

	q, err := query.Values(pictureQuery{
		Height:             height,
		Width:              width,
		MigrationOverrides: migrationOverrides,
		AccessToken:        accessToken,
	})
	if err != nil {
		return values.LinkURI{}, fmt.Errorf("failed to encode picture query: %w", err)
	}

	u := *b.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + b.apiVersion + "/" + id.String() + "/picture"
	u.RawPath = ""
	u.RawQuery = q.Encode()
	return values.FromURL(&u), nil
}
