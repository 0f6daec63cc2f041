package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/floatscore/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scores, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHistory(); err != nil {
			fail(err)
		}
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every recorded score",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHistoryClear(); err != nil {
			fail(err)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.out.Format(&output.Report{History: a.ctrl.History(), ShowHistory: true})
}

func runHistoryClear() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	a.ctrl.HistoryStore().Clear()
	return a.history.Save(a.ctrl.HistoryStore())
}
