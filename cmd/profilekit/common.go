package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reglet-dev/profilekit/internal/application/dto"
	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/infrastructure/output"
)

// CommonOptions contains output flags shared across commands that print a profile.
type CommonOptions struct {
	Format string
	Output string
	Indent bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Format: "table",
		Indent: true,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command, formats []string) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output,
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.Indent, "indent", opts.Indent,
		"Indent JSON output")
}

// ValidateFlags checks the format against the formats the factory supports.
func (opts *CommonOptions) ValidateFlags(formats []string) error {
	if !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(formats, ", "))
	}
	return nil
}

// writeProfile renders profile to the configured output.
func (opts *CommonOptions) writeProfile(cmd *cobra.Command, factory ports.OutputFormatterFactory, profile *entities.Profile) (err error) {
	if err := opts.ValidateFlags(factory.SupportedFormats()); err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.Output != "" {
		//nolint:gosec // G304: output path is chosen by the user
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		w = f
	}

	formatter, err := factory.Create(opts.Format, w, ports.FormatterOptions{Indent: opts.Indent})
	if err != nil {
		return err
	}
	return formatter.Format(profile)
}

// profileFlags holds the per-field flags of commands that build a profile.
type profileFlags struct {
	id         string
	firstName  string
	middleName string
	lastName   string
	name       string
	link       string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "Profile ID")
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&f.middleName, "middle-name", "", "Middle name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&f.name, "name", "", "Display name")
	cmd.Flags().StringVar(&f.link, "link", "", "Profile link URI")
}

// request converts the flags to a ProfileRequest. Flags that were not given
// stay absent, while an explicit empty value is kept as "".
func (f *profileFlags) request(fs *pflag.FlagSet) dto.ProfileRequest {
	changed := func(name, v string) *string {
		if !fs.Changed(name) {
			return nil
		}
		return &v
	}
	return dto.ProfileRequest{
		ID:         f.id,
		FirstName:  changed("first-name", f.firstName),
		MiddleName: changed("middle-name", f.middleName),
		LastName:   changed("last-name", f.lastName),
		Name:       changed("name", f.name),
		LinkURI:    changed("link", f.link),
	}
}

// defaultFormats lists the formats offered in flag help.
func defaultFormats() []string {
	return output.NewFormatterFactory().SupportedFormats()
}
