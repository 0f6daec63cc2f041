package outputters

import (
	"fmt"

	"github.com/dotcommander/floatscore/internal/config"
	"github.com/dotcommander/floatscore/internal/output"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Formatter returns the formatter for format.
func (o *Outputter) Formatter(format string) (output.Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(o.config.Quiet, o.config.Decimals), nil
	case "json":
		return output.NewJSONFormatter(true, o.config.Output), nil
	case "markdown":
		return output.NewMarkdownFormatter(o.config.Decimals, o.config.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Format renders report using the configured format
func (o *Outputter) Format(report *output.Report) error {
	formatter, err := o.Formatter(o.config.Format)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}
