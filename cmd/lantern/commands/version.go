package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lantern %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
