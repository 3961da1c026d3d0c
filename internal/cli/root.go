package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corenotes/corenotes/internal/logging"
)

const (
	AppID   = "io.corenotes.desktop"
	AppName = "CoreNotes"
)

// Options are the flags of the root command
type Options struct {
	APIRoot      string
	Profile      string
	ProfilesFile string
	LogLevel     string
	LogFormat    string
}

// NewRootCommand returns the corenotes command. Running it opens the window.
func NewRootCommand(version string) *cobra.Command {
	opts := Options{}
	env := logging.NewConfigFromEnv()

	cmd := &cobra.Command{
		Use:           "corenotes",
		Short:         "CoreNotes - desktop client for the notes API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(&logging.Config{Level: opts.LogLevel, Format: opts.LogFormat})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", env.Level, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", env.Format, "Log format (text, json)")

	cmd.Flags().StringVar(&opts.APIRoot, "api", "", "Notes API root, e.g. http://localhost:3001/api")
	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "Profile name from the profiles file")
	cmd.PersistentFlags().StringVar(&opts.ProfilesFile, "profiles-file", "", "Profiles file (default ~/.corenotes/profiles.yaml)")
	cmd.MarkFlagsMutuallyExclusive("api", "profile")

	cmd.AddCommand(versionCmd(version))
	cmd.AddCommand(profilesCmd(&opts))

	return cmd
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", AppName, version)
		},
	}
}
