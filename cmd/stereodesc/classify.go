package main

import (
	"fmt"
	"strconv"

	desc "github.com/rmera/stereodesc"
	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify TOTAL UNSPECIFIED",
		Short: "Classify stereochemistry from stereocenter counts",
		Long: `classify prints the stereochemistry status for a molecule with TOTAL atom
stereocenters, UNSPECIFIED of which have no assigned configuration.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := make([]int, 2)
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil || n < 0 {
					return fmt.Errorf("%q is not a valid stereocenter count", a)
				}
				counts[i] = n
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), desc.Classify(counts[0], counts[1]))
			return err
		},
	}
}
