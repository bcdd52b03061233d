package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/profilekit/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of profilekit",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "profilekit version %s\n", version.Get().Full())
		},
	}
}
