// Package entities contains domain entities for the profilekit domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"github.com/cespare/xxhash/v2"
	"go.mau.fi/util/ptr"

	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// Profile is the identity record of an authenticated user.
//
// Invariants Enforced:
// - ID is always present and non-blank
// - Every other field is optional; nil means absent, which is distinct from ""
// - A Profile never changes after construction; getters hand out copies
type Profile struct {
	firstName  *string
	middleName *string
	lastName   *string
	name       *string
	linkURI    *values.LinkURI
	id         values.ProfileID
}

// ProfileParams carries the raw fields a Profile is built from.
type ProfileParams struct {
	FirstName  *string
	MiddleName *string
	LastName   *string
	Name       *string
	LinkURI    *values.LinkURI
	ID         string
}

// NewProfile constructs a Profile. Only the id is validated.
func NewProfile(params ProfileParams) (*Profile, error) {
	id, err := values.NewProfileID(params.ID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		id:         id,
		firstName:  ptr.Clone(params.FirstName),
		middleName: ptr.Clone(params.MiddleName),
		lastName:   ptr.Clone(params.LastName),
		name:       ptr.Clone(params.Name),
		linkURI:    ptr.Clone(params.LinkURI),
	}, nil
}

// MustNewProfile constructs a Profile or panics (for tests only)
func MustNewProfile(params ProfileParams) *Profile {
	p, err := NewProfile(params)
	if err != nil {
		panic(err)
	}
	return p
}

// ID returns the profile's identity key.
func (p *Profile) ID() values.ProfileID {
	return p.id
}

// FirstName returns a copy of the first name, or nil if absent.
func (p *Profile) FirstName() *string {
	return ptr.Clone(p.firstName)
}

// MiddleName returns a copy of the middle name, or nil if absent.
func (p *Profile) MiddleName() *string {
	return ptr.Clone(p.middleName)
}

// LastName returns a copy of the last name, or nil if absent.
func (p *Profile) LastName() *string {
	return ptr.Clone(p.lastName)
}

// Name returns a copy of the display name, or nil if absent.
func (p *Profile) Name() *string {
	return ptr.Clone(p.name)
}

// LinkURI returns a copy of the profile link, or nil if absent.
func (p *Profile) LinkURI() *values.LinkURI {
	return ptr.Clone(p.linkURI)
}

// Params returns the fields of the profile, suitable for building a modified copy.
func (p *Profile) Params() ProfileParams {
	return ProfileParams{
		ID:         p.id.String(),
		FirstName:  p.FirstName(),
		MiddleName: p.MiddleName(),
		LastName:   p.LastName(),
		Name:       p.Name(),
		LinkURI:    p.LinkURI(),
	}
}

// Equals reports whether both profiles hold the same six fields.
// Two nil profiles are equal; a nil and a non-nil profile are not.
func (p *Profile) Equals(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id.Equals(other.id) &&
		equalStrings(p.firstName, other.firstName) &&
		equalStrings(p.middleName, other.middleName) &&
		equalStrings(p.lastName, other.lastName) &&
		equalStrings(p.name, other.name) &&
		equalLinks(p.linkURI, other.linkURI)
}

// HashCode returns a hash over every field, consistent with Equals.
func (p *Profile) HashCode() uint64 {
	d := xxhash.New()
	writeHashField(d, ptr.Ptr(p.id.String()))
	writeHashField(d, p.firstName)
	writeHashField(d, p.middleName)
	writeHashField(d, p.lastName)
	writeHashField(d, p.name)
	if p.linkURI == nil {
		writeHashField(d, nil)
	} else {
		writeHashField(d, ptr.Ptr(p.linkURI.String()))
	}
	return d.Sum64()
}

// writeHashField writes a presence marker, then the length and bytes of a present value,
// so that ("ab", nil) and ("a", "b") never collide structurally.
func writeHashField(d *xxhash.Digest, s *string) {
	if s == nil {
		_, _ = d.Write([]byte{0})
		return
	}
	n := len(*s)
	_, _ = d.Write([]byte{1, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	_, _ = d.WriteString(*s)
}

func equalStrings(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalLinks(a, b *values.LinkURI) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(*b)
}
