// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// ProfileRequest carries raw profile fields from an outer surface such as CLI flags.
// Nil fields were not supplied.
type ProfileRequest struct {
	FirstName  *string
	MiddleName *string
	LastName   *string
	Name       *string
	LinkURI    *string
	ID         string
}

// ToParams parses the link and returns construction parameters.
func (r ProfileRequest) ToParams() (entities.ProfileParams, error) {
	params := entities.ProfileParams{
		ID:         r.ID,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Name:       r.Name,
	}
	if r.LinkURI != nil {
		link, err := values.ParseLinkURI(*r.LinkURI)
		if err != nil {
			return entities.ProfileParams{}, err
		}
		params.LinkURI = &link
	}
	return params, nil
}

// ToProfile builds a Profile from the request.
func (r ProfileRequest) ToProfile() (*entities.Profile, error) {
	params, err := r.ToParams()
	if err != nil {
		return nil, err
	}
	return entities.NewProfile(params)
}
