package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dotcommander/floatscore/internal/batch"
	"github.com/dotcommander/floatscore/internal/discovery"
	"github.com/dotcommander/floatscore/internal/output"
)

var (
	batchRoot   string
	batchCommit bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [patterns...]",
	Short: "Score every input file under a directory",
	Long: `Score input sets read from YAML or JSON files.

Each file holds one mapping of field names to values, or a list of them.
Files that fail the input schema are reported and skipped. Hidden files
and directories are ignored.

Default patterns: **/*.yaml, **/*.yml, **/*.json

Examples:
  floatscore batch --root ./watchlist
  floatscore batch 'knives/**/*.yaml' --commit`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBatch(args); err != nil {
			fail(err)
		}
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchRoot, "root", "r", ".", "Directory to search for input files")
	batchCmd.Flags().BoolVar(&batchCommit, "commit", false, "Add scored entries to the history")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(patterns []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if len(patterns) == 0 {
		patterns = discovery.DefaultPatterns
	}
	files, err := discovery.NewFileDiscovery(batchRoot).DiscoverFiles(patterns)
	if err != nil {
		return fmt.Errorf("error discovering files: %w", err)
	}
	a.log.Debug("discovered input files", slog.Int("count", len(files)), slog.String("root", batchRoot))

	runner, err := batch.NewRunner(a.cfg.FormDefaults())
	if err != nil {
		return err
	}
	summary := runner.Run(files)

	if batchCommit && summary.Scored > 0 {
		h := a.ctrl.HistoryStore()
		for _, e := range summary.Entries {
			if e.OK() {
				h.Append(e.Result, e.Parsed.Name, e.Parsed.FloatRaw)
			}
		}
		a.saveHistory()
	}

	return a.out.Format(&output.Report{Batch: summary})
}
