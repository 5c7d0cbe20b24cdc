// Command rxncluster is the CLI entry point for the reaction-center
// clustering engine: spec.md §1 calls this "external collaborator" out of
// scope for the core, left to the surrounding application. This rewrite
// supplies it as a github.com/spf13/cobra command tree with two
// subcommands, cluster and bench.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rxncluster",
	Short: "Cluster chemical reactions by reaction-center equivalence",
}

func main() {
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newBenchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
