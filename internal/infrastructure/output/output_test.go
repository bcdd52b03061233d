package output

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/util/ptr"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// createTestProfile creates a fully populated profile for testing.
func createTestProfile() *entities.Profile {
	return entities.MustNewProfile(entities.ProfileParams{
		ID:         "ID",
		FirstName:  ptr.Ptr("FIRST_NAME"),
		MiddleName: ptr.Ptr("MIDDLE_NAME"),
		LastName:   ptr.Ptr("LAST_NAME"),
		Name:       ptr.Ptr("NAME"),
		LinkURI:    ptr.Ptr(values.MustParseLinkURI("https://www.facebook.com/name")),
	})
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(createTestProfile()))

	var decoded entities.Profile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, createTestProfile().Equals(&decoded))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestJSONFormatter_Indent(t *testing.T) {
	var buf bytes.Buffer
	p := entities.MustNewProfile(entities.ProfileParams{ID: "ANOTHER_ID"})
	require.NoError(t, NewJSONFormatter(&buf, true).Format(p))
	assert.Equal(t, "{\n  \"id\": \"ANOTHER_ID\"\n}\n", buf.String())
}

func TestJSONFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(nil))
	assert.Equal(t, "null\n", buf.String())
}

func TestTextFormatters_RejectInvalidUTF8(t *testing.T) {
	p := entities.MustNewProfile(entities.ProfileParams{ID: "ID", LastName: ptr.Ptr("a\xffb")})

	var buf bytes.Buffer
	assert.ErrorIs(t, NewJSONFormatter(&buf, false).Format(p), entities.ErrMalformedRecord)
	assert.ErrorIs(t, NewYAMLFormatter(&buf).Format(p), entities.ErrMalformedRecord)
	assert.Empty(t, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(createTestProfile()))

	out := buf.String()
	assert.Less(t, strings.Index(out, "id:"), strings.Index(out, "first_name:"))
	assert.Less(t, strings.Index(out, "last_name:"), strings.Index(out, "link_uri:"))

	var rec map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rec))
	p, err := entities.FromStructuredRecord(rec)
	require.NoError(t, err)
	assert.True(t, createTestProfile().Equals(p))
}

func TestYAMLFormatter_OmitsAbsentFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(entities.MustNewProfile(entities.ProfileParams{ID: "ANOTHER_ID"})))
	assert.Equal(t, "id: ANOTHER_ID\n", buf.String())
}

func TestSnapshotFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSnapshotFormatter(&buf).Format(createTestProfile()))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	p, err := entities.FromBinarySnapshot(raw)
	require.NoError(t, err)
	assert.True(t, createTestProfile().Equals(p))

	assert.Error(t, NewSnapshotFormatter(&buf).Format(nil))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false
	require.NoError(t, f.Format(entities.MustNewProfile(entities.ProfileParams{
		ID:   "ID",
		Name: ptr.Ptr("NAME"),
	})))

	out := buf.String()
	assert.Contains(t, out, "ID:          ID\n")
	assert.Contains(t, out, "Name:        NAME\n")
	assert.Contains(t, out, "First name:  -\n")
	assert.Contains(t, out, "Link:        -\n")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(nil))
	assert.Contains(t, buf.String(), "No current profile.")
}
