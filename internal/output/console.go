package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/floatscore/internal/batch"
	"github.com/dotcommander/floatscore/internal/controller"
	"github.com/dotcommander/floatscore/internal/format"
	"github.com/dotcommander/floatscore/internal/history"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet    bool
	colorize bool
	numbers  format.Numbers
	w        io.Writer
}

// NewConsoleFormatter creates a ConsoleFormatter writing to stdout. Colour
// is only used when stdout is a terminal.
func NewConsoleFormatter(quiet bool, decimals int) *ConsoleFormatter {
	return NewConsoleFormatterTo(os.Stdout, quiet, decimals, IsTTY(os.Stdout))
}

// NewConsoleFormatterTo creates a ConsoleFormatter writing to w.
func NewConsoleFormatterTo(w io.Writer, quiet bool, decimals int, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		colorize: colorize,
		numbers:  format.NewNumbers(decimals),
		w:        w,
	}
}

func (f *ConsoleFormatter) style(s lipgloss.Style) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return s
}

// Format formats the report for console output
func (f *ConsoleFormatter) Format(report *Report) error {
	if report.Current != nil {
		f.printResult(*report.Current)
	}
	if report.Batch != nil {
		f.printBatch(report.Batch)
	}
	if report.ShowHistory {
		if report.Current != nil || report.Batch != nil {
			fmt.Fprintln(f.w)
		}
		f.printHistory(report.History)
	}
	return nil
}

// printResult prints the score breakdown, or just the final line in quiet mode.
func (f *ConsoleFormatter) printResult(d controller.Display) {
	label := f.style(labelStyle(d.Label)).Render(d.Label.String())
	if f.quiet {
		fmt.Fprintf(f.w, "%s %s\n", f.numbers.Format(d.Result.FinalScore), label)
		return
	}

	bold := f.style(lipgloss.NewStyle().Bold(true))
	dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))

	fmt.Fprintf(f.w, "%s %s\n", bold.Render(d.Name), dim.Render("(float "+d.FloatRaw+")"))

	r := d.Result
	rows := [][2]string{
		{"Adjusted cost", f.numbers.Format(r.AdjustedCost)},
		{"Discount", f.numbers.Format(r.Discount)},
		{"Clamped discount", f.numbers.Format(r.ClampedDiscount)},
		{"Float quality", f.numbers.Format(r.FloatQuality)},
		{"Raw score", f.numbers.Format(r.RawScore)},
		{"Liquidity factor", f.numbers.Format(r.LiquidityFactor)},
		{"Final score", f.numbers.Format(r.FinalScore)},
	}
	for _, row := range rows {
		fmt.Fprintf(f.w, "  %-18s %s\n", row[0], row[1])
	}
	fmt.Fprintf(f.w, "  → %s\n", label)

	if d.Record != nil {
		fmt.Fprintf(f.w, "  %s\n", dim.Render("saved to history as "+shortID(d.Record.ID)))
	}
}

// printHistory prints committed records as an aligned table, newest first.
func (f *ConsoleFormatter) printHistory(records []history.Record) {
	if len(records) == 0 {
		fmt.Fprintln(f.w, "History is empty")
		return
	}

	header := []string{"ID", "Name", "Float", "Final", "Label"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			shortID(rec.ID),
			rec.Name,
			rec.FloatRaw,
			f.numbers.Format(rec.Result.FinalScore),
			rec.Label().String(),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	bold := f.style(lipgloss.NewStyle().Bold(true))
	fmt.Fprintln(f.w, bold.Render(fmt.Sprintf("History (%d)", len(records))))
	fmt.Fprintln(f.w, "  "+padRow(header, widths))
	for i, row := range rows {
		line := padRow(row[:4], widths[:4])
		label := f.style(labelStyle(records[i].Label())).Render(row[4])
		fmt.Fprintf(f.w, "  %s  %s\n", line, label)
	}
}

// printBatch prints one line per input set and a summary line.
func (f *ConsoleFormatter) printBatch(s *batch.Summary) {
	green := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("10")))
	red := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("9")))

	for _, e := range s.Entries {
		if !e.OK() {
			fmt.Fprintf(f.w, "%s %s: %v\n", red.Render("✗"), e.Source, e.Err)
			continue
		}
		if f.quiet {
			continue
		}
		label := f.style(labelStyle(e.Label)).Render(e.Label.String())
		fmt.Fprintf(f.w, "%s %s  %s  %s  %s\n",
			green.Render("✓"), e.Source, e.Parsed.Name, f.numbers.Format(e.Result.FinalScore), label)
	}

	summary := fmt.Sprintf("%d scored, %d rejected", s.Scored, s.Rejected)
	if s.Rejected > 0 {
		fmt.Fprintf(f.w, "\n%s\n", red.Render(summary))
	} else {
		fmt.Fprintf(f.w, "\n%s\n", green.Render(summary))
	}
}

func padRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.Join(parts, "  ")
}
