package values

import (
	"encoding/json"
	"net/url"
)

// LinkURI is a canonical profile link.
// Two links are equal when their canonical string forms match.
type LinkURI struct {
	value string
}

// ParseLinkURI parses a URI reference into a LinkURI
func ParseLinkURI(raw string) (LinkURI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return LinkURI{}, NewInvalidArgumentError("link_uri", "cannot parse URI", err)
	}
	return LinkURI{value: u.String()}, nil
}

// MustParseLinkURI parses a URI or panics (for tests and constants)
func MustParseLinkURI(raw string) LinkURI {
	l, err := ParseLinkURI(raw)
	if err != nil {
		panic(err)
	}
	return l
}

// FromURL creates a LinkURI from an already parsed URL
func FromURL(u *url.URL) LinkURI {
	if u == nil {
		return LinkURI{}
	}
	return LinkURI{value: u.String()}
}

// String returns the canonical string form
func (l LinkURI) String() string {
	return l.value
}

// URL returns a freshly parsed copy of the link.
func (l LinkURI) URL() *url.URL {
	// value came out of url.URL.String, so it always parses back
	u, _ := url.Parse(l.value)
	return u
}

// IsEmpty returns true if this is the zero value
func (l LinkURI) IsEmpty() bool {
	return l.value == ""
}

// Equals checks if two links have the same canonical form
func (l LinkURI) Equals(other LinkURI) bool {
	return l.value == other.value
}

// MarshalJSON implements json.Marshaler
func (l LinkURI) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (l *LinkURI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return NewInvalidArgumentError("link_uri", "link must be a JSON string", err)
	}

	parsed, err := ParseLinkURI(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
