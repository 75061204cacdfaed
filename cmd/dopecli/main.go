// Command dopecli prints a dope card (trajectory table and sight
// corrections) for a rifle and cartridge loaded from a saved profile
// and a shot described by flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var verbose, showVersion bool

	rootCmd := &cobra.Command{
		Use:   "dopecli",
		Short: "DOPE card generator for rifle ballistics",
		Long: `dopecli computes trajectory, sight corrections, and wind tables
for a rifle, cartridge, and shot using a point-mass ballistics solver.

Example usage:
  dopecli solve --profile deer-rifle --distance 500 --wind-speed 10 --wind-dir 90`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("dopecli %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")

	rootCmd.AddCommand(newSolveCmd(&verbose))
	rootCmd.AddCommand(newWindTableCmd(&verbose))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func levelFor(verbose bool) string {
	if verbose {
		return "debug"
	}
	return "info"
}
