package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/util/ptr"

	"github.com/reglet-dev/profilekit/internal/domain/values"
)

const (
	testID         = "ID"
	testAnotherID  = "ANOTHER_ID"
	testFirstName  = "FIRST_NAME"
	testMiddleName = "MIDDLE_NAME"
	testLastName   = "LAST_NAME"
	testName       = "NAME"
	testLinkURI    = "https://www.facebook.com/name"
)

func createDefaultProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := NewProfile(ProfileParams{
		ID:         testID,
		FirstName:  ptr.Ptr(testFirstName),
		MiddleName: ptr.Ptr(testMiddleName),
		LastName:   ptr.Ptr(testLastName),
		Name:       ptr.Ptr(testName),
		LinkURI:    ptr.Ptr(values.MustParseLinkURI(testLinkURI)),
	})
	require.NoError(t, err)
	return p
}

func createMostlyNullsProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := NewProfile(ProfileParams{ID: testAnotherID})
	require.NoError(t, err)
	return p
}

func assertDefaultGetters(t *testing.T, p *Profile) {
	t.Helper()
	require.NotNil(t, p)
	assert.Equal(t, testID, p.ID().String())
	assert.Equal(t, ptr.Ptr(testFirstName), p.FirstName())
	assert.Equal(t, ptr.Ptr(testMiddleName), p.MiddleName())
	assert.Equal(t, ptr.Ptr(testLastName), p.LastName())
	assert.Equal(t, ptr.Ptr(testName), p.Name())
	require.NotNil(t, p.LinkURI())
	assert.True(t, values.MustParseLinkURI(testLinkURI).Equals(*p.LinkURI()))
}

func assertMostlyNullsGetters(t *testing.T, p *Profile) {
	t.Helper()
	require.NotNil(t, p)
	assert.Equal(t, testAnotherID, p.ID().String())
	assert.Nil(t, p.FirstName())
	assert.Nil(t, p.MiddleName())
	assert.Nil(t, p.LastName())
	assert.Nil(t, p.Name())
	assert.Nil(t, p.LinkURI())
}
