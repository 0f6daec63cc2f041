package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/floatscore/internal/params"
	"github.com/dotcommander/floatscore/internal/scoring"
)

var labelCmd = &cobra.Command{
	Use:   "label <score>",
	Short: "Print the interpretation of a final score",
	Long: `Print the label a final score maps to.

  > 0.40    Strong buy
  > 0.15    Consider
  >= -0.15  Neutral
  otherwise Avoid

Flag parsing is off so negative scores can be given directly:
  floatscore label -0.5`,
	Args:               cobra.ExactArgs(1),
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		if args[0] == "-h" || args[0] == "--help" {
			cmd.Help()
			return
		}
		if err := runLabel(cmd, args[0]); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, arg string) error {
	score, ok := params.Number(arg)
	if !ok {
		return fmt.Errorf("not a finite number: %q", arg)
	}
	fmt.Fprintln(cmd.OutOrStdout(), scoring.Interpret(score))
	return nil
}
