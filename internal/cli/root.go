// Package cli defines the nsfetl command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the release version, overridable at link time.
var Version = "0.1.0"

// NewRootCmd constructs the nsfetl root command with all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nsfetl",
		Short: "NSF award ETL",
		Long: `nsfetl cleans an NSF award search CSV export into a compressed
columnar file: it deduplicates awards, strips markup and boilerplate from
text fields, merges collaborative-research awards, and adjusts amounts for
inflation against a fixed reference year.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nsfetl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nsfetl %s\n", Version)
		},
	}
}
