// Package validation checks incoming profile documents before they reach the domain.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

//go:embed record_schema.json
var recordSchemaJSON []byte

const recordSchemaURL = "profile-record.json"

// RecordValidator validates JSON profile records against the record schema.
type RecordValidator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewRecordValidator creates a validator. The schema is compiled on first use.
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{}
}

func (v *RecordValidator) compile() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource(recordSchemaURL, bytes.NewReader(recordSchemaJSON)); err != nil {
			v.err = fmt.Errorf("failed to add record schema: %w", err)
			return
		}
		v.schema, v.err = compiler.Compile(recordSchemaURL)
	})
	return v.schema, v.err
}

// ValidateJSON parses data and checks it against the record schema.
// Any document problem is reported as an entities.MalformedRecordError.
func (v *RecordValidator) ValidateJSON(data []byte) (entities.Record, error) {
	schema, err := v.compile()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &entities.MalformedRecordError{Key: "(root)", Message: "invalid JSON", Cause: err}
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, formatSchemaValidationError(validationErr)
		}
		return nil, &entities.MalformedRecordError{Key: "(root)", Message: "schema validation failed", Cause: err}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &entities.MalformedRecordError{Key: "(root)", Message: "expected a JSON object"}
	}
	return entities.Record(obj), nil
}

// DecodeProfile validates data and converts it into a Profile.
func (v *RecordValidator) DecodeProfile(data []byte) (*entities.Profile, error) {
	rec, err := v.ValidateJSON(data)
	if err != nil {
		return nil, err
	}
	return entities.FromStructuredRecord(rec)
}

// formatSchemaValidationError flattens a schema error tree into one MalformedRecordError.
// The key is the first failing instance location.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string
	key := ""

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			if key == "" {
				key = strings.TrimPrefix(location, "/")
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}
	collectErrors(err)

	if key == "" {
		key = "(root)"
	}
	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return &entities.MalformedRecordError{Key: key, Message: strings.Join(messages, "; ")}
}
