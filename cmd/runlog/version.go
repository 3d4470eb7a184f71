// ABOUTME: CLI command for printing the build version.
// ABOUTME: The version is set at build time with -ldflags "-X main.version=...".
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the runlog version",
	Annotations: map[string]string{noStore: "true"},
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "runlog %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
