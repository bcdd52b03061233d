package output

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

// SnapshotFormatter writes the binary snapshot, base64 encoded, on one line.
type SnapshotFormatter struct {
	writer io.Writer
}

// NewSnapshotFormatter creates a new snapshot formatter.
func NewSnapshotFormatter(w io.Writer) *SnapshotFormatter {
	return &SnapshotFormatter{writer: w}
}

// Format writes the snapshot. A nil profile has no snapshot and is an error.
func (f *SnapshotFormatter) Format(profile *entities.Profile) error {
	if profile == nil {
		return fmt.Errorf("no profile to snapshot")
	}
	_, err := fmt.Fprintln(f.writer, base64.StdEncoding.EncodeToString(profile.ToBinarySnapshot()))
	return err
}
