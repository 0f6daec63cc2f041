package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/floatscore/internal/output"
	"github.com/dotcommander/floatscore/internal/scoring"
)

var (
	configFile   string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	decimals     int
	historyFile  string
	prefsFile    string
	noPrefs      bool
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

// Exit codes.
const (
	exitError   = 1 // tool failure
	exitInvalid = 2 // inputs rejected by the scorer
)

var rootCmd = &cobra.Command{
	Use:   "floatscore",
	Short: "Advantage score calculator for tradeable skins",
	Long: `floatscore rates a collectible item from its average cost, current price,
wear float, rarity and liquidity. The final score combines a clamped price
discount with a float quality term and maps it to Strong buy, Consider,
Neutral or Avoid.

Use compute to score once, commit to also keep the result in history, batch
to score a directory of input files, or shell for an interactive session.`,
	Version:       output.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(exitError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default .floatscorerc.{json,yaml,yml})")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Print only the final score and label")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write json/markdown output to this file")
	rootCmd.PersistentFlags().IntVarP(&decimals, "decimals", "d", 3, "Decimal places for displayed numbers")
	rootCmd.PersistentFlags().StringVar(&historyFile, "history-file", "", "History file (default ~/.floatscore/history.json)")
	rootCmd.PersistentFlags().StringVar(&prefsFile, "prefs-file", "", "Remembered inputs file (default ~/.floatscore/prefs.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noPrefs, "no-prefs", false, "Do not read or write remembered inputs")

	bindFlags()
}

// bindFlags binds persistent flags to their viper keys.
func bindFlags() {
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("decimals", rootCmd.PersistentFlags().Lookup("decimals"))
	viper.BindPFlag("historyFile", rootCmd.PersistentFlags().Lookup("history-file"))
	viper.BindPFlag("prefsFile", rootCmd.PersistentFlags().Lookup("prefs-file"))
	viper.BindPFlag("noPrefs", rootCmd.PersistentFlags().Lookup("no-prefs"))
}

// fail reports err and exits, using exitInvalid for rejected inputs.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if scoring.KindOf(err) != "" {
		exitFunc(exitInvalid)
		return
	}
	exitFunc(exitError)
}
