// Package main is the openrazer-configure command. It applies a mouse
// profile to every mouse the OpenRazer daemon exposes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/openrazer-configure/internal/logging"
	"github.com/muurk/openrazer-configure/internal/profile"
	"github.com/muurk/openrazer-configure/internal/razer"
	"github.com/muurk/openrazer-configure/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errorOutput(err))
		os.Exit(1)
	}
}

// errorOutput renders a failed run for stderr: every profile problem,
// or the error followed by its troubleshooting hint.
func errorOutput(err error) string {
	if errs := profile.ValidationErrors(err); len(errs) > 0 {
		return "Error: " + profile.FormatValidationErrors(errs)
	}

	out := fmt.Sprintf("Error: %v\n", err)
	if hint := razer.GetTroubleshootingHint(err); hint != "" {
		out += "\n" + hint + "\n"
	}
	return out
}

var rootCmd = &cobra.Command{
	Use:   "openrazer-configure",
	Short: "Apply a settings profile to Razer mice through the OpenRazer daemon",
	Long: `openrazer-configure lists the devices known to the OpenRazer daemon and
applies one profile to every mouse: DPI, DPI stages, polling rate, idle
time, low battery threshold, and logo lighting.

Settings a device does not support are skipped. Settings that already match
the profile are left alone.

The profile is read from --profile, then from
$XDG_CONFIG_HOME/openrazer-configure/profile.yaml, and falls back to the
built-in defaults.`,
	Version:       version.Get().Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConfigure,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().BoolVarP(&dryRun, "dry", "d", false, "dry run: list devices only, will not reconfigure devices")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "profile file (default $XDG_CONFIG_HOME/openrazer-configure/profile.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+" or info)")

	initProfileCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing profile file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initProfileCmd)
}
