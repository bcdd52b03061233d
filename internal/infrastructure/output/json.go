package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

// JSONFormatter writes the structured record as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the profile as JSON, or null when profile is nil.
func (f *JSONFormatter) Format(profile *entities.Profile) error {
	var rec entities.Record
	if profile != nil {
		rec = profile.ToStructuredRecord()
		if err := rec.ValidateText(); err != nil {
			return err
		}
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(rec, "", "  ")
	} else {
		data, err = json.Marshal(rec)
	}
	if err != nil {
		return err
	}

	if _, err := f.writer.Write(data); err != nil {
		return err
	}
	_, err = f.writer.Write([]byte("\n"))
	return err
}
