package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

var recordKeyOrder = []string{
	entities.RecordKeyID,
	entities.RecordKeyFirstName,
	entities.RecordKeyMiddleName,
	entities.RecordKeyLastName,
	entities.RecordKeyName,
	entities.RecordKeyLinkURI,
}

// YAMLFormatter writes the structured record as YAML, keys in record order.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the profile as YAML, or null when profile is nil.
func (f *YAMLFormatter) Format(profile *entities.Profile) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	var doc any
	if profile != nil {
		rec := profile.ToStructuredRecord()
		if err := rec.ValidateText(); err != nil {
			return err
		}
		ordered := yaml.MapSlice{}
		for _, key := range recordKeyOrder {
			if v, ok := rec[key]; ok {
				ordered = append(ordered, yaml.MapItem{Key: key, Value: v})
			}
		}
		doc = ordered
	}

	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}
