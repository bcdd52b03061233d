package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/profilekit/internal/application/ports"
)

// Execute runs the root command.
func Execute() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every subcommand of one root command.
type app struct {
	v        *viper.Viper
	prompter ports.ProfilePrompter
}

// newRootCmd builds the command tree. A nil prompter selects the terminal prompter.
func newRootCmd(prompter ports.ProfilePrompter) *cobra.Command {
	a := &app{v: viper.New(), prompter: prompter}

	rootCmd := &cobra.Command{
		Use:   "profilekit",
		Short: "Inspect, convert and cache user identity profiles",
		Long: `profilekit works with the identity profile of an authenticated user.
It converts profiles between JSON, YAML and the binary snapshot format,
keeps the current profile in a local cache and builds profile picture URLs.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.initConfig()
			setupLogging(cmd.ErrOrStderr(), a.v.GetBool("verbose"))
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.profilekit/config.yaml)")
	flags.String("cache-path", "", "current profile cache file (overrides config)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("cache.path", flags.Lookup("cache-path"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newEncodeCmd(),
		newDecodeCmd(a),
		newCurrentCmd(a),
		newPictureCmd(a),
	)
	return rootCmd
}

// initConfig binds PROFILEKIT_* environment variables, e.g. PROFILEKIT_CACHE_PATH.
func (a *app) initConfig() {
	a.v.SetEnvPrefix("PROFILEKIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
