// Command stereodesc computes molecular descriptors with RDKit and reports the
// stereochemistry status of each molecule.
//
//	stereodesc [report] [files...]
//	stereodesc classify TOTAL UNSPECIFIED
//	stereodesc version
//
// Without files, four built-in sample molecules are reported.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stereodesc:", err)
		os.Exit(1)
	}
}

// newRootCommand creates the root command. Reports go to stdout, logs to stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stereodesc [files...]",
		Short: "Molecular descriptors and stereochemistry status with RDKit",
		Long: `stereodesc parses SMILES strings with RDKit, computes their descriptors and
classifies their stereochemistry as achiral, fully specified, unspecified or
partially specified. Input files can be SMILES (.smi) or YAML (.yaml) sample
sets, optionally compressed (.gz, .zst). The first SMILES that can't be parsed
stops the run.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./stereodesc.yaml if present)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-file", "", "also write JSON logs to this file (rotated)")
	pf.Bool("no-color", false, "disable colored output")

	addReportFlags(rootCmd)
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}
