package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/corenotes/corenotes/internal/config"
)

func profilesCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage named notes servers",
	}

	cmd.AddCommand(profilesListCmd(opts))
	cmd.AddCommand(profilesSetCmd(opts))
	cmd.AddCommand(profilesRemoveCmd(opts))

	return cmd
}

func profilesListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profilesPath(*opts)
			if err != nil {
				return err
			}
			profiles, err := loadProfiles(path)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tAPI ROOT\tTIMEOUT")
			for _, name := range profiles.Names() {
				p := profiles[name]
				if p == nil {
					continue
				}
				timeout := "-"
				if p.Timeout > 0 {
					timeout = p.Timeout.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.APIRoot, timeout)
			}
			return w.Flush()
		},
	}
}

func profilesSetCmd(opts *Options) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "set NAME API_ROOT",
		Short: "Add or replace a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &config.Profile{APIRoot: args[1], Timeout: timeout}
			if err := p.Verify(); err != nil {
				return err
			}

			path, err := profilesPath(*opts)
			if err != nil {
				return err
			}
			profiles, err := loadProfiles(path)
			if err != nil {
				return err
			}

			profiles[args[0]] = p
			if err := profiles.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "profile %s saved to %s\n", args[0], path)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout for this profile (e.g. 5s)")
	return cmd
}

func profilesRemoveCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profilesPath(*opts)
			if err != nil {
				return err
			}
			profiles, err := loadProfiles(path)
			if err != nil {
				return err
			}
			if _, ok := profiles[args[0]]; !ok {
				return fmt.Errorf("%w: %s", config.ErrProfileNotFound, args[0])
			}

			delete(profiles, args[0])
			return profiles.Save(path)
		},
	}
}

// profilesPath returns --profiles-file or the default location
func profilesPath(opts Options) (string, error) {
	if opts.ProfilesFile != "" {
		return opts.ProfilesFile, nil
	}
	return config.DefaultProfilesPath()
}
