// Package cli provides the command-line interface for tonemill.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/output"
	"github.com/tonemill/tonemill/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
// It is called by main.main() and by the CLI tests.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonemill",
		Short: "A perceptual tint, shade and tone generator",
		Long: `Tonemill derives perceptually uniform colour variants from a set of named
base colours. Each base colour is blended toward white (tints), black
(shades) and neutral grey (tones) in the HCL colour space, and the result
is rendered as JSON, CSS custom properties or SCSS variables.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate(version.String() + "\n")

	registry := output.DefaultRegistry()
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(registry))
	rootCmd.AddCommand(newFormatsCmd(registry))

	return rootCmd
}

// newVersionCmd builds the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
