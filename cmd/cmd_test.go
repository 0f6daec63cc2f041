package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/floatscore/internal/history"
	"github.com/dotcommander/floatscore/internal/output"
)

// setupCmdTest points every store and the JSON report into a temp dir.
func setupCmdTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("historyFile", filepath.Join(dir, "history.json"))
	viper.Set("prefsFile", filepath.Join(dir, "prefs.yaml"))
	viper.Set("format", "json")
	viper.Set("output", filepath.Join(dir, "out.json"))
	return dir
}

func readReport(t *testing.T, dir string) output.JSONReport {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	var report output.JSONReport
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

// scoreCmd builds a command carrying the input flags set from values.
func scoreCmd(t *testing.T, values map[string]string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	addInputFlags(c)
	for k, v := range values {
		require.NoError(t, c.Flags().Set(k, v))
	}
	return c
}

func strongBuyFlags(name string) map[string]string {
	return map[string]string{
		"name":          name,
		"average-cost":  "500",
		"current-price": "400",
		"float":         "0.12",
		"price-weight":  "0.7",
		"float-weight":  "0.3",
	}
}

func TestCompute_StrongBuy(t *testing.T) {
	dir := setupCmdTest(t)

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("AK-47 | Redline")), false))

	report := readReport(t, dir)
	require.NotNil(t, report.Result)
	assert.Equal(t, "floatscore", report.Header.Tool)
	assert.Equal(t, "AK-47 | Redline", report.Result.Name)
	assert.Equal(t, "0.12", report.Result.FloatRaw)
	assert.Equal(t, "Strong buy", report.Result.Label)
	assert.InDelta(t, 0.404, report.Result.Score.FinalScore, 1e-9)
	assert.Empty(t, report.Result.ID)

	_, err := os.Stat(filepath.Join(dir, "history.json"))
	assert.True(t, os.IsNotExist(err), "compute must not write history")
}

func TestCompute_RemembersInputs(t *testing.T) {
	dir := setupCmdTest(t)

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("first")), false))
	// Second run only changes the name; prices and float come from prefs.
	require.NoError(t, runScore(scoreCmd(t, map[string]string{"name": "second"}), false))

	report := readReport(t, dir)
	require.NotNil(t, report.Result)
	assert.Equal(t, "second", report.Result.Name)
	assert.Equal(t, "0.12", report.Result.FloatRaw)
	assert.InDelta(t, 0.404, report.Result.Score.FinalScore, 1e-9)
}

func TestCommit_PersistsHistoryNewestFirst(t *testing.T) {
	dir := setupCmdTest(t)

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("older")), true))
	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("newer")), true))

	report := readReport(t, dir)
	require.NotNil(t, report.Result)
	assert.NotEmpty(t, report.Result.ID)

	h, err := history.NewStore(filepath.Join(dir, "history.json")).Load()
	require.NoError(t, err)
	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "newer", records[0].Name)
	assert.Equal(t, "older", records[1].Name)
	assert.Equal(t, report.Result.ID, records[0].ID)
}

func TestCompute_InvalidInputsExit2(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"float out of range", map[string]string{"average-cost": "500", "float": "1.5", "price-weight": "1"}},
		{"float not a number", map[string]string{"average-cost": "500", "float": "abc", "price-weight": "1"}},
		{"zero average cost", map[string]string{"average-cost": "0", "float": "0.5", "price-weight": "1"}},
		{"zero weights", map[string]string{"average-cost": "500", "float": "0.5", "price-weight": "0", "float-weight": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCmdTest(t)

			oldExit := exitFunc
			defer func() { exitFunc = oldExit }()
			code := -1
			exitFunc = func(c int) { code = c }

			computeCmd.Run(scoreCmd(t, tt.values), nil)
			assert.Equal(t, exitInvalid, code)
		})
	}
}

func TestCompute_BadConfigExit1(t *testing.T) {
	setupCmdTest(t)
	viper.Set("format", "xml")

	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()
	code := -1
	exitFunc = func(c int) { code = c }

	computeCmd.Run(scoreCmd(t, strongBuyFlags("x")), nil)
	assert.Equal(t, exitError, code)
}

func TestHistory_ListAndClear(t *testing.T) {
	dir := setupCmdTest(t)

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("kept")), true))
	require.NoError(t, runHistory())

	report := readReport(t, dir)
	require.Len(t, report.History, 1)
	assert.Equal(t, "kept", report.History[0].Name)
	assert.Equal(t, "Strong buy", report.History[0].Label)

	require.NoError(t, runHistoryClear())

	h, err := history.NewStore(filepath.Join(dir, "history.json")).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestReset_ClearsHistoryAndPrefs(t *testing.T) {
	dir := setupCmdTest(t)

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("gone")), true))
	require.FileExists(t, filepath.Join(dir, "prefs.yaml"))

	require.NoError(t, runReset())

	h, err := history.NewStore(filepath.Join(dir, "history.json")).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.NoFileExists(t, filepath.Join(dir, "prefs.yaml"))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"0.404", "Strong buy", false},
		{"0.40", "Consider", false},
		{"0.15", "Neutral", false},
		{"-0.15", "Neutral", false},
		{"-0.2", "Avoid", false},
		{" 0.3 ", "Consider", false},
		{"abc", "", true},
		{"NaN", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			var buf bytes.Buffer
			c := &cobra.Command{}
			c.SetOut(&buf)

			err := runLabel(c, tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestLabel_NegativeScores(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"-0.5", "Avoid"},
		{"-0.15", "Neutral"},
		{"-0.1", "Neutral"},
		{"0.41", "Strong buy"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := executeRoot(t, "label", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestLabel_Help(t *testing.T) {
	out, err := executeRoot(t, "label", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "floatscore label -0.5")
}

func TestCommit_OverflowedCostIsSaved(t *testing.T) {
	dir := setupCmdTest(t)

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("first")), true))

	values := strongBuyFlags("overflow")
	values["current-price"] = "1e308"
	values["fee"] = "1e308"
	require.NoError(t, runScore(scoreCmd(t, values), true))

	report := readReport(t, dir)
	require.NotNil(t, report.Result)
	assert.True(t, math.IsInf(report.Result.Score.AdjustedCost, 1))
	assert.Equal(t, "Avoid", report.Result.Label)

	h, err := history.NewStore(filepath.Join(dir, "history.json")).Load()
	require.NoError(t, err)
	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "overflow", records[0].Name)
	assert.True(t, math.IsInf(records[0].Result.AdjustedCost, 1))
	assert.Equal(t, -1.0, records[0].Result.ClampedDiscount)
}

func TestCommit_CorruptHistoryKeptAsBackup(t *testing.T) {
	dir := setupCmdTest(t)
	path := filepath.Join(dir, "history.json")
	require.NoError(t, os.WriteFile(path, []byte("[broken"), 0644))

	require.NoError(t, runScore(scoreCmd(t, strongBuyFlags("fresh")), true))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "[broken", string(backup))

	h, err := history.NewStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())
	assert.Equal(t, "fresh", h.Records()[0].Name)
}

func TestBatch(t *testing.T) {
	dir := setupCmdTest(t)
	in := filepath.Join(dir, "in")
	require.NoError(t, os.MkdirAll(in, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(in, "a.yaml"), []byte(`
name: Redline
averageCost: 500
currentPrice: 400
floatValue: "0.12"
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "b.json"), []byte(`[
  {"name": "Asiimov", "averageCost": 100, "currentPrice": 90, "floatValue": 0.3},
  {"name": "Worn out", "averageCost": 100, "currentPrice": 90, "floatValue": 2}
]`), 0644))

	oldRoot, oldCommit := batchRoot, batchCommit
	defer func() { batchRoot, batchCommit = oldRoot, oldCommit }()
	batchRoot, batchCommit = in, true

	require.NoError(t, runBatch(nil))

	report := readReport(t, dir)
	require.NotNil(t, report.Batch)
	assert.Equal(t, 2, report.Batch.Scored)
	assert.Equal(t, 1, report.Batch.Rejected)
	require.Len(t, report.Batch.Entries, 3)
	assert.InDelta(t, 0.404, report.Batch.Entries[0].Result.Score.FinalScore, 1e-9)
	assert.Equal(t, "InvalidFloat", report.Batch.Entries[2].Kind)

	h, err := history.NewStore(filepath.Join(dir, "history.json")).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())
}

func TestShell(t *testing.T) {
	dir := setupCmdTest(t)

	script := strings.Join([]string{
		"help",
		"set name AK-47 | Redline",
		"set averageCost 500",
		"set current-price 400",
		"set floatValue 0.12",
		"show",
		"commit",
		"history",
		"set bogus 1",
		"set floatValue 7",
		"compute",
		"reset",
		"history",
		"dance",
		"quit",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, runShell(strings.NewReader(script), &out))

	got := out.String()
	assert.Contains(t, got, "AK-47 | Redline")
	assert.Contains(t, got, "Strong buy")
	assert.Contains(t, got, "History (1)")
	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, "Inputs reset.")
	assert.Contains(t, got, "History is empty")
	assert.Contains(t, got, `unknown command "dance"`)

	// Shell history is kept in memory only.
	assert.NoFileExists(t, filepath.Join(dir, "history.json"))
}

func TestShell_EOFEndsSession(t *testing.T) {
	setupCmdTest(t)

	var out bytes.Buffer
	require.NoError(t, runShell(strings.NewReader("show"), &out))
	assert.Contains(t, out.String(), "priceWeight")
}

func TestSubcommands(t *testing.T) {
	for _, c := range []*cobra.Command{computeCmd, commitCmd, historyCmd, historyClearCmd, resetCmd, labelCmd, batchCmd, shellCmd} {
		t.Run(c.Use, func(t *testing.T) {
			assert.NotEmpty(t, c.Use)
			assert.NotEmpty(t, c.Short)
			assert.NotNil(t, c.Run)
		})
	}
	assert.Equal(t, "floatscore", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Version)
}
