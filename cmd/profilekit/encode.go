package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/profilekit/internal/infrastructure/output"
)

func newEncodeCmd() *cobra.Command {
	opts := DefaultCommonOptions()
	var fields profileFlags

	cmd := &cobra.Command{
		Use:   "encode --id <id> [field flags]",
		Short: "Build a profile from flags and print it",
		Long: `Build a profile from the given fields and print it in the requested format.
Fields that are not given are absent; an explicit empty value such as
--middle-name "" is kept as an empty string.

Examples:
  profilekit encode --id 42 --first-name Jane --format json
  profilekit encode --id 42 --link https://example.com/jane --format snapshot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := fields.request(cmd.Flags()).ToProfile()
			if err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}
			return opts.writeProfile(cmd, output.NewFormatterFactory(), profile)
		},
	}

	fields.register(cmd)
	opts.RegisterFlags(cmd, defaultFormats())
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
