package main

import (
	"fmt"
	"runtime"

	"github.com/rmera/stereodesc/rdkit"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			ml := rdkit.Version()
			if ml == "" {
				ml = "not built in"
			}
			fmt.Fprintf(out, "stereodesc version: %s\n", Version)
			fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "RDKit MinimalLib: %s\n", ml)
		},
	}
}
