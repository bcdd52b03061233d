package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/reglet-dev/profilekit/internal/application/errors"
	"github.com/reglet-dev/profilekit/internal/application/services"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
)

func newCurrentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Manage the cached current profile",
	}
	cmd.AddCommand(
		newCurrentShowCmd(a),
		newCurrentSetCmd(a),
		newCurrentClearCmd(a),
	)
	return cmd
}

func newCurrentShowCmd(a *app) *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current profile",
		Args:  cobra.NoArgs,
		RunE: a.withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			manager := ctx.Container.ProfileManager()
			if _, err := manager.LoadCurrentProfile(ctx.Context); err != nil {
				return err
			}
			return opts.writeProfile(cmd, ctx.Container.FormatterFactory(), manager.CurrentProfile())
		}),
	}

	opts.RegisterFlags(cmd, defaultFormats())
	return cmd
}

func newCurrentSetCmd(a *app) *cobra.Command {
	opts := DefaultCommonOptions()
	var fields profileFlags

	cmd := &cobra.Command{
		Use:   "set [field flags]",
		Short: "Replace the current profile",
		Long: `Replace the cached current profile with one built from flags.
Without --id on an interactive terminal, a form is shown, prefilled from
the flags and the existing current profile.`,
		Args: cobra.NoArgs,
		RunE: a.withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			manager := ctx.Container.ProfileManager()
			if _, err := manager.LoadCurrentProfile(ctx.Context); err != nil {
				return err
			}

			params, err := fields.request(cmd.Flags()).ToParams()
			if err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			if !cmd.Flags().Changed("id") {
				prompter := ctx.Container.Prompter()
				if !prompter.IsInteractive() {
					return apperrors.NewValidationError("id", "--id is required when stdin is not a terminal")
				}
				params, err = prompter.PromptForProfile(ctx.Context, mergeParams(manager.CurrentProfile(), params))
				if err != nil {
					return err
				}
			}

			profile, err := entities.NewProfile(params)
			if err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			tracker := services.NewProfileTracker(manager.Store(), func(old, current *entities.Profile) {
				ctx.Logger.Info("current profile replaced",
					"old_id", idOf(old),
					"new_id", idOf(current),
					"changed", !old.Equals(current))
			})
			defer tracker.StopTracking()

			if err := manager.SetCurrentProfile(ctx.Context, profile, true); err != nil {
				return err
			}
			return opts.writeProfile(cmd, ctx.Container.FormatterFactory(), profile)
		}),
	}

	fields.register(cmd)
	opts.RegisterFlags(cmd, defaultFormats())
	return cmd
}

func newCurrentClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the current profile",
		Args:  cobra.NoArgs,
		RunE: a.withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			if err := ctx.Container.ProfileManager().SetCurrentProfile(ctx.Context, nil, true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Current profile cleared.")
			return nil
		}),
	}
}

// mergeParams overlays the given fields onto those of base. base may be nil.
func mergeParams(base *entities.Profile, given entities.ProfileParams) entities.ProfileParams {
	var merged entities.ProfileParams
	if base != nil {
		merged = base.Params()
	}
	if given.ID != "" {
		merged.ID = given.ID
	}
	if given.FirstName != nil {
		merged.FirstName = given.FirstName
	}
	if given.MiddleName != nil {
		merged.MiddleName = given.MiddleName
	}
	if given.LastName != nil {
		merged.LastName = given.LastName
	}
	if given.Name != nil {
		merged.Name = given.Name
	}
	if given.LinkURI != nil {
		merged.LinkURI = given.LinkURI
	}
	return merged
}

func idOf(p *entities.Profile) string {
	if p == nil {
		return ""
	}
	return p.ID().String()
}
