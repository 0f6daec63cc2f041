package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dotcommander/floatscore/internal/batch"
	"github.com/dotcommander/floatscore/internal/controller"
	"github.com/dotcommander/floatscore/internal/history"
	"github.com/dotcommander/floatscore/internal/scoring"
)

// Report is everything a command wants rendered. Nil/empty parts are skipped.
type Report struct {
	Current     *controller.Display
	History     []history.Record
	ShowHistory bool
	Batch       *batch.Summary
}

// Formatter renders a Report.
type Formatter interface {
	Format(report *Report) error
}

// IsTTY returns true if w is a terminal
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// labelStyle colours a label from red (Avoid) to green (Strong buy).
func labelStyle(l scoring.Label) lipgloss.Style {
	switch l {
	case scoring.LabelStrongBuy:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	case scoring.LabelConsider:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	case scoring.LabelNeutral:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	}
}

// shortID trims a UUID to its first block for tables.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
