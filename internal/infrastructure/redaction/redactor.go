// Package redaction masks secrets before URIs reach logs.
package redaction

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"
	"github.com/zricethezav/gitleaks/v8/detect"

	"github.com/reglet-dev/profilekit/internal/domain/values"
)

const redacted = "[REDACTED]"

// DefaultQueryParams are always masked.
var DefaultQueryParams = []string{"access_token"}

// defaultPatterns are applied after gitleaks, and alone when it is disabled.
var defaultPatterns = []*regexp.Regexp{
	// Facebook user and page access tokens
	regexp.MustCompile(`\bEAA[A-Za-z0-9]{20,}`),
	// Github Token
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,255}`),
	// Slack Token
	regexp.MustCompile(`xox[baprs]-([0-9a-zA-Z]{10,48})?`),
}

// Redactor masks URI credentials, sensitive query parameters, and secrets
// found by the gitleaks rule set. It is safe for concurrent use.
type Redactor struct {
	detector        *detect.Detector
	salt            string
	params          []string
	detectorOnce    sync.Once
	hashMode        bool
	disableGitleaks bool
}

// Config holds the configuration for the Redactor.
type Config struct {
	// Salt for hashing. If empty, hash is deterministic but unsalted.
	Salt string
	// Extra query parameters to mask, in addition to DefaultQueryParams
	QueryParams []string
	// If true, replace with hash instead of [REDACTED]
	HashMode bool
	// If true, skip the gitleaks detector and use only the built-in patterns
	DisableGitleaks bool
}

// New creates a new Redactor with the given configuration.
// The gitleaks detector is built on first use.
func New(cfg Config) *Redactor {
	params := slices.Concat(DefaultQueryParams, cfg.QueryParams)
	slices.Sort(params)
	return &Redactor{
		params:          slices.Compact(params),
		hashMode:        cfg.HashMode,
		salt:            cfg.Salt,
		disableGitleaks: cfg.DisableGitleaks,
	}
}

// RedactURI returns the string form of uri with userinfo, sensitive query
// values and detected secrets masked. The uri itself is not modified.
func (r *Redactor) RedactURI(uri values.LinkURI) string {
	u := uri.URL()

	if u.User != nil {
		if password, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), r.mask(password))
		} else {
			u.User = url.User(r.mask(u.User.Username()))
		}
	}

	if u.RawQuery != "" {
		q := u.Query()
		masked := false
		for key, vals := range q {
			if !slices.Contains(r.params, key) {
				continue
			}
			for i, v := range vals {
				vals[i] = r.mask(v)
			}
			masked = true
		}
		if masked {
			u.RawQuery = q.Encode()
		}
	}

	return r.ScrubString(u.String())
}

// ScrubString replaces secrets found by gitleaks and the built-in patterns.
func (r *Redactor) ScrubString(input string) string {
	if input == "" {
		return ""
	}

	result := input
	if detector := r.gitleaks(); detector != nil {
		for _, finding := range detector.Detect(detect.Fragment{Raw: result}) {
			if finding.Secret == "" {
				continue
			}
			result = strings.ReplaceAll(result, finding.Secret, r.mask(finding.Secret))
		}
	}

	for _, re := range defaultPatterns {
		result = re.ReplaceAllStringFunc(result, r.mask)
	}
	return result
}

// gitleaks returns the shared detector, or nil when it is disabled or failed to load.
func (r *Redactor) gitleaks() *detect.Detector {
	if r.disableGitleaks {
		return nil
	}
	r.detectorOnce.Do(func() {
		// On failure the built-in patterns still apply
		r.detector, _ = newGitleaksDetector()
	})
	return r.detector
}

// newGitleaksDetector creates a detector with the gitleaks default rule set.
func newGitleaksDetector() (*detect.Detector, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(config.DefaultConfig)); err != nil {
		return nil, fmt.Errorf("failed to read gitleaks config: %w", err)
	}

	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gitleaks config: %w", err)
	}

	cfg, err := vc.Translate()
	if err != nil {
		return nil, fmt.Errorf("failed to translate gitleaks config: %w", err)
	}
	return detect.NewDetector(cfg), nil
}

func (r *Redactor) mask(v string) string {
	if r.hashMode {
		return r.hash(v)
	}
	return redacted
}

// hash returns a truncated HMAC-SHA256 of the value, stable for a given salt.
func (r *Redactor) hash(v string) string {
	mac := hmac.New(sha256.New, []byte(r.salt))
	_, _ = mac.Write([]byte(v))
	return "sha256:" + hex.EncodeToString(mac.Sum(nil))[:16]
}
