package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/floatscore/internal/format"
	"github.com/dotcommander/floatscore/internal/history"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	outputFile string
	numbers    format.Numbers
	w          io.Writer
	now        func() time.Time
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(decimals int, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		outputFile: outputFile,
		numbers:    format.NewNumbers(decimals),
		w:          os.Stdout,
		now:        time.Now,
	}
}

// Format formats the report as Markdown
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString("# Float Score Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", f.now().Format("2006-01-02 15:04:05")))

	if d := report.Current; d != nil {
		r := d.Result
		builder.WriteString(fmt.Sprintf("## %s\n\n", escapeCell(d.Name)))
		builder.WriteString(fmt.Sprintf("Float: `%s`\n\n", d.FloatRaw))
		builder.WriteString("| Metric | Value |\n")
		builder.WriteString("|--------|-------|\n")
		builder.WriteString(fmt.Sprintf("| Adjusted cost | %s |\n", f.numbers.Format(r.AdjustedCost)))
		builder.WriteString(fmt.Sprintf("| Discount | %s |\n", f.numbers.Format(r.Discount)))
		builder.WriteString(fmt.Sprintf("| Clamped discount | %s |\n", f.numbers.Format(r.ClampedDiscount)))
		builder.WriteString(fmt.Sprintf("| Float quality | %s |\n", f.numbers.Format(r.FloatQuality)))
		builder.WriteString(fmt.Sprintf("| Raw score | %s |\n", f.numbers.Format(r.RawScore)))
		builder.WriteString(fmt.Sprintf("| Liquidity factor | %s |\n", f.numbers.Format(r.LiquidityFactor)))
		builder.WriteString(fmt.Sprintf("| **Final score** | **%s** |\n", f.numbers.Format(r.FinalScore)))
		builder.WriteString(fmt.Sprintf("\n**Interpretation:** %s\n\n", d.Label))
	}

	if s := report.Batch; s != nil {
		builder.WriteString("## Batch\n\n")
		builder.WriteString(fmt.Sprintf("%d scored, %d rejected\n\n", s.Scored, s.Rejected))
		builder.WriteString("| Source | Name | Final | Label |\n")
		builder.WriteString("|--------|------|-------|-------|\n")
		for _, e := range s.Entries {
			if e.OK() {
				builder.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
					escapeCell(e.Source), escapeCell(e.Parsed.Name), f.numbers.Format(e.Result.FinalScore), e.Label))
			} else {
				builder.WriteString(fmt.Sprintf("| %s | ❌ | %s | %s |\n",
					escapeCell(e.Source), format.Placeholder, escapeCell(e.Err.Error())))
			}
		}
		builder.WriteString("\n")
	}

	if report.ShowHistory {
		f.writeHistory(&builder, report.History)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err := io.WriteString(f.w, builder.String())
	return err
}

func (f *MarkdownFormatter) writeHistory(builder *strings.Builder, records []history.Record) {
	builder.WriteString("## History\n\n")
	if len(records) == 0 {
		builder.WriteString("*No entries.*\n")
		return
	}
	builder.WriteString("| ID | Name | Float | Final | Label |\n")
	builder.WriteString("|----|------|-------|-------|-------|\n")
	for _, rec := range records {
		builder.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s | %s |\n",
			shortID(rec.ID), escapeCell(rec.Name), escapeCell(rec.FloatRaw),
			f.numbers.Format(rec.Result.FinalScore), rec.Label()))
	}
}

// escapeCell keeps pipes in skin names from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
