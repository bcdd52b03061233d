// Package prompt asks the user for profile fields on an interactive terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"go.mau.fi/util/ptr"

	"github.com/reglet-dev/profilekit/internal/application/ports"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// Ensure interface compliance
var _ ports.ProfilePrompter = (*TerminalPrompter)(nil)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("profile entry aborted")

// TerminalPrompter collects profile fields with a huh form.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device (terminal), not a pipe or file
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// answers holds the raw form input. Empty optional answers mean "absent".
type answers struct {
	id         string
	firstName  string
	middleName string
	lastName   string
	name       string
	link       string
}

// PromptForProfile shows a form prefilled from defaults and returns the entered fields.
func (p *TerminalPrompter) PromptForProfile(ctx context.Context, defaults entities.ProfileParams) (entities.ProfileParams, error) {
	a := answersFrom(defaults)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Profile ID").Value(&a.id).Validate(validateID),
			huh.NewInput().Title("First name").Value(&a.firstName),
			huh.NewInput().Title("Middle name").Value(&a.middleName),
			huh.NewInput().Title("Last name").Value(&a.lastName),
			huh.NewInput().Title("Display name").Value(&a.name),
			huh.NewInput().Title("Profile link").Value(&a.link).Validate(validateLink),
		),
	).WithOutput(os.Stderr)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return entities.ProfileParams{}, ErrAborted
		}
		return entities.ProfileParams{}, fmt.Errorf("profile form failed: %w", err)
	}

	return a.params()
}

func answersFrom(d entities.ProfileParams) answers {
	a := answers{
		id:         d.ID,
		firstName:  ptr.Val(d.FirstName),
		middleName: ptr.Val(d.MiddleName),
		lastName:   ptr.Val(d.LastName),
		name:       ptr.Val(d.Name),
	}
	if d.LinkURI != nil {
		a.link = d.LinkURI.String()
	}
	return a
}

func (a answers) params() (entities.ProfileParams, error) {
	params := entities.ProfileParams{
		ID:         a.id,
		FirstName:  optional(a.firstName),
		MiddleName: optional(a.middleName),
		LastName:   optional(a.lastName),
		Name:       optional(a.name),
	}
	if link := strings.TrimSpace(a.link); link != "" {
		parsed, err := values.ParseLinkURI(link)
		if err != nil {
			return entities.ProfileParams{}, err
		}
		params.LinkURI = &parsed
	}
	return params, nil
}

// optional maps a blank answer to an absent field.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func validateID(s string) error {
	_, err := values.NewProfileID(s)
	return err
}

func validateLink(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := values.ParseLinkURI(strings.TrimSpace(s))
	return err
}
