package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/floatscore/internal/controller"
	"github.com/dotcommander/floatscore/internal/history"
	"github.com/dotcommander/floatscore/internal/scoring"
)

// Version is reported in JSON headers.
var Version = "dev"

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	indent     bool
	outputFile string
	w          io.Writer
	now        func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes
// to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
		w:          os.Stdout,
		now:        time.Now,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Result  *JSONResult  `json:"result,omitempty"`
	Batch   *JSONBatch   `json:"batch,omitempty"`
	History []JSONRecord `json:"history,omitempty"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONResult is one computed score.
type JSONResult struct {
	Name     string         `json:"name"`
	FloatRaw string         `json:"float_raw"`
	Label    string         `json:"label"`
	Score    scoring.Result `json:"score"`
	ID       string         `json:"id,omitempty"`
}

// JSONRecord is one history entry.
type JSONRecord struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	FloatRaw  string         `json:"float_raw"`
	Label     string         `json:"label"`
	Score     scoring.Result `json:"score"`
	CreatedAt string         `json:"created_at"`
}

// JSONBatch summarizes a batch run.
type JSONBatch struct {
	Scored   int              `json:"scored"`
	Rejected int              `json:"rejected"`
	Entries  []JSONBatchEntry `json:"entries"`
}

// JSONBatchEntry is one input set of a batch run.
type JSONBatchEntry struct {
	Source string      `json:"source"`
	Result *JSONResult `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Kind   string      `json:"kind,omitempty"`
}

// Format formats the report as JSON
func (f *JSONFormatter) Format(report *Report) error {
	out := JSONReport{
		Header: JSONHeader{
			Tool:      "floatscore",
			Version:   Version,
			Timestamp: f.now().Format(time.RFC3339),
		},
	}

	if report.Current != nil {
		out.Result = jsonResult(*report.Current)
	}

	if report.Batch != nil {
		b := &JSONBatch{
			Scored:   report.Batch.Scored,
			Rejected: report.Batch.Rejected,
			Entries:  make([]JSONBatchEntry, 0, len(report.Batch.Entries)),
		}
		for _, e := range report.Batch.Entries {
			entry := JSONBatchEntry{Source: e.Source}
			if e.OK() {
				entry.Result = &JSONResult{
					Name:     e.Parsed.Name,
					FloatRaw: e.Parsed.FloatRaw,
					Label:    e.Label.String(),
					Score:    e.Result,
				}
			} else {
				entry.Error = e.Err.Error()
				entry.Kind = string(scoring.KindOf(e.Err))
			}
			b.Entries = append(b.Entries, entry)
		}
		out.Batch = b
	}

	if report.ShowHistory {
		out.History = make([]JSONRecord, 0, len(report.History))
		for _, rec := range report.History {
			out.History = append(out.History, jsonRecord(rec))
		}
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}

func jsonResult(d controller.Display) *JSONResult {
	r := &JSONResult{
		Name:     d.Name,
		FloatRaw: d.FloatRaw,
		Label:    d.Label.String(),
		Score:    d.Result,
	}
	if d.Record != nil {
		r.ID = d.Record.ID
	}
	return r
}

func jsonRecord(rec history.Record) JSONRecord {
	return JSONRecord{
		ID:        rec.ID,
		Name:      rec.Name,
		FloatRaw:  rec.FloatRaw,
		Label:     rec.Label().String(),
		Score:     rec.Result,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}
