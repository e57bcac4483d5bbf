// Package cli wires the branchup command-line surface.
package cli

import (
	"github.com/spf13/cobra"

	"branchup.dev/branchup/internal/runtime"
)

// NewRootCmd creates the root cobra command. The root command is the update
// run itself; exitCode receives the process exit code for the run.
func NewRootCmd(version string, exitCode *int) *cobra.Command {
	var (
		dryRun  bool
		noPush  bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "branchup [trunk]",
		Short: "Branchup updates every local branch against the trunk",
		Long: `Branchup updates every local branch against the trunk branch.

Regular branches get the trunk merged in and are pushed. Branches named
stacked/<ticket>/<rest> are rebased onto the local branch owning that ticket
while it is still active, in dependency order; rebased branches are never
pushed automatically.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			trunk := ""
			if len(args) > 0 {
				trunk = args[0]
			}
			return runUpdate(cmd.Context(), runtime.Options{
				Trunk:   trunk,
				DryRun:  dryRun,
				NoPush:  noPush,
				Verbose: verbose,
			}, exitCode)
		},
	}

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would happen without touching the working tree (BRANCHUP_DRY_RUN)")
	rootCmd.Flags().BoolVar(&noPush, "no-push", false, "Skip pushing updated branches (BRANCHUP_NO_PUSH)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output (BRANCHUP_VERBOSE)")

	return rootCmd
}
