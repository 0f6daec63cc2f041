package cmd

import (
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget remembered inputs and clear the history",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReset(); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	a.ctrl.Reset()
	return a.history.Save(a.ctrl.HistoryStore())
}
