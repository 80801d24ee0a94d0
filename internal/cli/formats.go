package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/output"
)

// newFormatsCmd builds the formats subcommand, which lists the
// registered output serialisers.
func newFormatsCmd(registry *output.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Long:  `List the output formats the generate command can render, with their default file names.`,
		Run: func(cmd *cobra.Command, args []string) {
			all := registry.All()
			for _, name := range registry.List() {
				s := all[name]
				fmt.Fprintf(cmd.OutOrStdout(), "  %-6s - %s (default file: %s)\n",
					s.Name(), s.Description(), s.DefaultFileName())
			}
		},
	}
}
