package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/dotcommander/floatscore/internal/scoring"
)

// Record is one committed score. Records are never modified after creation.
type Record struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	FloatRaw  string         `json:"float_raw"`
	Result    scoring.Result `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

// Label is the interpretation of the record's final score.
func (r Record) Label() scoring.Label {
	return scoring.Interpret(r.Result.FinalScore)
}

// History is an ordered, newest-first sequence of records.
// It is not safe for concurrent use.
type History struct {
	records []Record
	newID   func() string
	now     func() time.Time
}

// New creates an empty History.
func New() *History {
	return &History{
		newID: func() string { return uuid.NewString() },
		now:   time.Now,
	}
}

// FromRecords creates a History holding records, which must already be
// newest first.
func FromRecords(records []Record) *History {
	h := New()
	h.records = append([]Record(nil), records...)
	return h
}

// Append builds a record for result and puts it first.
func (h *History) Append(result scoring.Result, name, floatRaw string) Record {
	rec := Record{
		ID:        h.newID(),
		Name:      name,
		FloatRaw:  floatRaw,
		Result:    result,
		CreatedAt: h.now().UTC(),
	}
	h.records = append([]Record{rec}, h.records...)
	return rec
}

// Records returns a copy of the sequence, newest first.
func (h *History) Records() []Record {
	return append([]Record(nil), h.records...)
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// Clear removes every record.
func (h *History) Clear() {
	h.records = nil
}
