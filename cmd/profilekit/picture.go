package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	apperrors "github.com/reglet-dev/profilekit/internal/application/errors"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

func newPictureCmd(a *app) *cobra.Command {
	var (
		id          string
		width       int
		height      int
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "picture [--id <id>] --width <px> --height <px>",
		Short: "Print the profile picture URL",
		Long: `Print the Graph API URL of a profile picture. Without --id the
current profile is used.

Examples:
  profilekit picture --id 42 --width 200 --height 200`,
		Args: cobra.NoArgs,
		RunE: a.withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			profileID, err := resolvePictureID(ctx, id)
			if err != nil {
				return err
			}

			uri, err := ctx.Container.PictureURIBuilder().Build(profileID, width, height, accessToken)
			if err != nil {
				return err
			}
			if ctx.Logger.Enabled(ctx.Context, slog.LevelDebug) {
				ctx.Logger.Debug("built picture URI", "uri", ctx.Container.Redactor().RedactURI(uri))
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri.String())
			return nil
		}),
	}

	cmd.Flags().StringVar(&id, "id", "", "Profile ID (default: current profile)")
	cmd.Flags().IntVar(&width, "width", 0, "Picture width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Picture height in pixels")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token appended to the URL")
	return cmd
}

func resolvePictureID(ctx *CommandContext, id string) (values.ProfileID, error) {
	if id != "" {
		return values.NewProfileID(id)
	}

	manager := ctx.Container.ProfileManager()
	found, err := manager.LoadCurrentProfile(ctx.Context)
	if err != nil {
		return values.ProfileID{}, err
	}
	if !found {
		return values.ProfileID{}, apperrors.NewValidationError("id", "no --id given and no current profile is cached")
	}
	return manager.CurrentProfile().ID(), nil
}
