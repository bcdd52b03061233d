package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/reglet-dev/profilekit/internal/application/errors"
	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/infrastructure/validation"
)

// Input formats accepted by decode.
const (
	inputJSON     = "json"
	inputSnapshot = "snapshot"
)

func newDecodeCmd(a *app) *cobra.Command {
	opts := DefaultCommonOptions()
	var input string

	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Parse a stored profile and print it",
		Long: `Parse a profile from a file (or stdin with "-") and print it in the
requested format. JSON input is validated against the profile record schema;
snapshot input is the base64 text printed by "encode --format snapshot".

Examples:
  profilekit decode profile.json --format yaml
  profilekit encode --id 42 --format snapshot | profilekit decode - --input snapshot`,
		Args: cobra.ExactArgs(1),
		RunE: a.withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			profile, err := decodeProfile(ctx.Container.RecordValidator(), input, data)
			if err != nil {
				return err
			}
			ctx.Logger.Debug("decoded profile", "id", profile.ID().String(), "input", input)

			return opts.writeProfile(cmd, ctx.Container.FormatterFactory(), profile)
		}),
	}

	cmd.Flags().StringVar(&input, "input", inputJSON, "Input format: json, snapshot")
	opts.RegisterFlags(cmd, defaultFormats())
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	//nolint:gosec // G304: input path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func decodeProfile(validator *validation.RecordValidator, input string, data []byte) (*entities.Profile, error) {
	switch input {
	case inputJSON:
		return validator.DecodeProfile(data)
	case inputSnapshot:
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, apperrors.NewValidationError("input", "snapshot is not valid base64", err.Error())
		}
		return entities.FromBinarySnapshot(raw)
	default:
		return nil, apperrors.NewValidationError("input", fmt.Sprintf("unknown input format %q", input))
	}
}
