package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/floatscore/internal/output"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Score an item without recording it",
	Long: `Score an item from the given inputs and print the result.

Inputs not given as flags fall back to configured defaults. The last
average cost, current price and float are remembered between runs.

Examples:
  floatscore compute --average-cost 500 --current-price 400 --float 0.12
  floatscore compute --float 0.07 --rarity 1.2 --format json`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(cmd, false); err != nil {
			fail(err)
		}
	},
}

func init() {
	addInputFlags(computeCmd)
	rootCmd.AddCommand(computeCmd)
}

// runScore computes, and when commit is set also records, the current inputs.
func runScore(cmd *cobra.Command, commit bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	applyInputFlags(cmd, a.ctrl)

	compute := a.ctrl.Compute
	if commit {
		compute = a.ctrl.Commit
	}
	d, err := compute()
	if err != nil {
		return err
	}
	if commit {
		a.saveHistory()
	}

	return a.out.Format(&output.Report{Current: &d})
}
