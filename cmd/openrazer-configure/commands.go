package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/openrazer-configure/internal/configure"
	"github.com/muurk/openrazer-configure/internal/logging"
	"github.com/muurk/openrazer-configure/internal/profile"
	"github.com/muurk/openrazer-configure/internal/razer"
	"github.com/muurk/openrazer-configure/internal/ui"
)

var (
	dryRun      bool
	profilePath string
	logLevel    string
	force       bool
)

var initProfileCmd = &cobra.Command{
	Use:   "init-profile",
	Short: "Write the built-in profile to a file for editing",
	Long: `Write the built-in profile as YAML to --profile, or to the default profile
path when --profile is not given. An existing file is kept unless --force
is set.`,
	Args: cobra.NoArgs,
	RunE: runInitProfile,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	p, source, err := profile.Resolve(profilePath)
	if err != nil {
		return err
	}
	logging.LogProfile(source, p)

	var results []ui.DeviceResult
	client, err := razer.Connect()
	if err == nil {
		defer client.Close()
		runner := configure.NewRunner(configure.ClientSource{Client: client}, configure.Options{
			DryRun:  dryRun,
			Profile: p,
		})
		results, err = runner.Run()
	}

	if ui.IsTerminal() {
		printSummary(cmd, results, source, err)
	}
	return err
}

func printSummary(cmd *cobra.Command, results []ui.DeviceResult, source string, err error) {
	summary := ui.NewSummary(results, dryRun)
	summary.ProfileSource = source
	if err != nil {
		if len(results) == 0 {
			summary.Err = err
		}
		if hint := razer.GetTroubleshootingHint(err); hint != "" {
			summary.Hint = strings.Split(hint, "\n")
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary.Render())
}

func runInitProfile(cmd *cobra.Command, args []string) error {
	path := profilePath
	if path == "" {
		var err error
		if path, err = profile.GetProfilePath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("profile %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check profile %s: %w", path, err)
	}

	if err := profile.Save(path, profile.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote profile to %s\n", path)
	return nil
}
