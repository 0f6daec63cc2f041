package cmd

import "github.com/spf13/cobra"

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Score an item and add it to the history",
	Long: `Score an item like compute and prepend the result to the history file.

Examples:
  floatscore commit --name "AK-47 | Redline" --average-cost 500 --current-price 400 --float 0.12`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(cmd, true); err != nil {
			fail(err)
		}
	},
}

func init() {
	addInputFlags(commitCmd)
	rootCmd.AddCommand(commitCmd)
}
