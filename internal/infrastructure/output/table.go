package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// TableFormatter formats a profile as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the profile as a table. Absent fields show as "-".
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(profile *entities.Profile) error {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 60), colorGray))
	if profile == nil {
		fmt.Fprintln(f.writer, "No current profile.")
		fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 60), colorGray))
		return nil
	}

	link := "-"
	if l := profile.LinkURI(); l != nil {
		link = l.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"ID", f.colorize(profile.ID().String(), colorBold)},
		{"First name", orDash(profile.FirstName())},
		{"Middle name", orDash(profile.MiddleName())},
		{"Last name", orDash(profile.LastName())},
		{"Name", orDash(profile.Name())},
		{"Link", link},
	}
	for _, row := range rows {
		fmt.Fprintf(f.writer, "%-12s %s\n", row.label+":", row.value)
	}
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 60), colorGray))
	return nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
