package entities

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// Keys of the structured record.
const (
	RecordKeyID         = "id"
	RecordKeyFirstName  = "first_name"
	RecordKeyMiddleName = "middle_name"
	RecordKeyLastName   = "last_name"
	RecordKeyName       = "name"
	RecordKeyLinkURI    = "link_uri"
)

var recordKeys = []string{
	RecordKeyID,
	RecordKeyFirstName,
	RecordKeyMiddleName,
	RecordKeyLastName,
	RecordKeyName,
	RecordKeyLinkURI,
}

// Record is the key/value document form of a Profile.
// Absent fields have no key; values are strings.
type Record map[string]any

// ToStructuredRecord converts the profile into a Record holding only present fields.
func (p *Profile) ToStructuredRecord() Record {
	rec := Record{RecordKeyID: p.id.String()}
	putString(rec, RecordKeyFirstName, p.firstName)
	putString(rec, RecordKeyMiddleName, p.middleName)
	putString(rec, RecordKeyLastName, p.lastName)
	putString(rec, RecordKeyName, p.name)
	if p.linkURI != nil {
		rec[RecordKeyLinkURI] = p.linkURI.String()
	}
	return rec
}

// ValidateText reports a MalformedRecordError for the first value that is not
// valid UTF-8. Text encodings would replace such bytes and lose the original value.
func (r Record) ValidateText() error {
	for _, key := range recordKeys {
		if s, ok := r[key].(string); ok && !utf8.ValidString(s) {
			return &MalformedRecordError{Key: key, Message: "value is not valid UTF-8"}
		}
	}
	return nil
}

// FromStructuredRecord rebuilds a Profile from a Record.
// Missing optional keys become nil; unknown keys are ignored.
func FromStructuredRecord(rec Record) (*Profile, error) {
	id, ok, err := getString(rec, RecordKeyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MalformedRecordError{Key: RecordKeyID, Message: "required key is missing"}
	}

	params := ProfileParams{ID: *id}
	fields := []struct {
		dst **string
		key string
	}{
		{&params.FirstName, RecordKeyFirstName},
		{&params.MiddleName, RecordKeyMiddleName},
		{&params.LastName, RecordKeyLastName},
		{&params.Name, RecordKeyName},
	}
	for _, f := range fields {
		if *f.dst, _, err = getString(rec, f.key); err != nil {
			return nil, err
		}
	}

	rawLink, _, err := getString(rec, RecordKeyLinkURI)
	if err != nil {
		return nil, err
	}
	if rawLink != nil {
		link, err := values.ParseLinkURI(*rawLink)
		if err != nil {
			return nil, &MalformedRecordError{Key: RecordKeyLinkURI, Message: "invalid URI", Cause: err}
		}
		params.LinkURI = &link
	}

	p, err := NewProfile(params)
	if err != nil {
		return nil, &MalformedRecordError{Key: RecordKeyID, Message: "invalid id", Cause: err}
	}
	return p, nil
}

// MarshalJSON implements json.Marshaler.
// Profiles holding invalid UTF-8 are rejected rather than silently altered.
func (p *Profile) MarshalJSON() ([]byte, error) {
	rec := p.ToStructuredRecord()
	if err := rec.ValidateText(); err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Profile) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return &MalformedRecordError{Key: "(root)", Message: "not a JSON object", Cause: err}
	}

	decoded, err := FromStructuredRecord(rec)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

func putString(rec Record, key string, s *string) {
	if s != nil {
		rec[key] = *s
	}
}

// getString reads key from rec. A JSON null is treated like a missing key.
func getString(rec Record, key string) (*string, bool, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil, false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, false, &MalformedRecordError{Key: key, Message: fmt.Sprintf("expected string, got %T", raw)}
	}
	return &s, true, nil
}
