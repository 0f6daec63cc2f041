// Package controller owns the calculator state: the form fields, the
// displayed result and the history. Each user action has one entry point.
package controller

import (
	"log/slog"

	"github.com/dotcommander/floatscore/internal/history"
	"github.com/dotcommander/floatscore/internal/params"
	"github.com/dotcommander/floatscore/internal/prefs"
	"github.com/dotcommander/floatscore/internal/scoring"
)

// Remembered lists the fields written to the prefs store on every change.
var Remembered = []params.Field{params.CurrentPrice, params.AverageCost, params.FloatValue}

// Display is a computed result ready to be shown.
type Display struct {
	Result   scoring.Result
	Label    scoring.Label
	Name     string
	FloatRaw string
	Record   *history.Record // set when the result was committed
}

// Options configures a Controller.
type Options struct {
	Defaults params.Raw
	Prefs    prefs.Store
	History  *history.History
	Logger   *slog.Logger
}

// Controller is single-threaded; one caller drives it.
type Controller struct {
	defaults params.Raw
	fields   params.Raw
	current  *Display
	history  *history.History
	prefs    prefs.Store
	log      *slog.Logger
}

// New creates a Controller. Remembered inputs are read once here.
func New(opts Options) *Controller {
	c := &Controller{
		defaults: opts.Defaults.Clone(),
		history:  opts.History,
		prefs:    opts.Prefs,
		log:      opts.Logger,
	}
	if c.defaults == nil {
		c.defaults = params.Raw{}
	}
	if c.history == nil {
		c.history = history.New()
	}
	if c.prefs == nil {
		c.prefs = prefs.NewMemoryStore()
	}
	if c.log == nil {
		c.log = slog.Default()
	}

	c.fields = c.defaults.Clone()
	c.restore()
	return c
}

func (c *Controller) restore() {
	values, err := c.prefs.Load()
	if err != nil {
		c.log.Warn("could not read remembered inputs", slog.Any("error", err))
		return
	}
	for _, f := range Remembered {
		if v, ok := values[string(f)]; ok {
			c.fields[f] = v
		}
	}
}

func (c *Controller) remember() {
	values := make(map[string]string, len(Remembered))
	for _, f := range Remembered {
		if v, ok := c.fields[f]; ok {
			values[string(f)] = v
		}
	}
	if err := c.prefs.Save(values); err != nil {
		c.log.Warn("could not remember inputs", slog.Any("error", err))
	}
}

// Set updates one field by name.
func (c *Controller) Set(name, value string) error {
	f, err := params.Lookup(name)
	if err != nil {
		return err
	}
	c.SetField(f, value)
	return nil
}

// SetField updates one field.
func (c *Controller) SetField(f params.Field, value string) {
	c.fields[f] = value
	for _, r := range Remembered {
		if r == f {
			c.remember()
			return
		}
	}
}

// Fields returns a copy of the current form fields.
func (c *Controller) Fields() params.Raw {
	return c.fields.Clone()
}

// Compute scores the current fields and replaces the displayed result.
// On a validation failure the displayed result is left as it was.
func (c *Controller) Compute() (Display, error) {
	parsed := params.Parse(c.fields)
	res, err := scoring.Compute(parsed.Inputs)
	if err != nil {
		c.log.Debug("inputs rejected", slog.String("kind", string(scoring.KindOf(err))))
		return Display{}, err
	}

	d := Display{
		Result:   res,
		Label:    scoring.Interpret(res.FinalScore),
		Name:     parsed.Name,
		FloatRaw: parsed.FloatRaw,
	}
	c.current = &d
	return d, nil
}

// Commit computes and appends the result to the history.
func (c *Controller) Commit() (Display, error) {
	d, err := c.Compute()
	if err != nil {
		return Display{}, err
	}

	rec := c.history.Append(d.Result, d.Name, d.FloatRaw)
	d.Record = &rec
	c.current = &d
	c.log.Debug("committed to history", slog.String("id", rec.ID), slog.Int("entries", c.history.Len()))
	return d, nil
}

// Reset restores default fields and clears the result, the history and the
// remembered inputs.
func (c *Controller) Reset() {
	c.fields = c.defaults.Clone()
	c.current = nil
	c.history.Clear()
	if err := c.prefs.Clear(); err != nil {
		c.log.Warn("could not clear remembered inputs", slog.Any("error", err))
	}
}

// Current returns the displayed result, if any.
func (c *Controller) Current() (Display, bool) {
	if c.current == nil {
		return Display{}, false
	}
	return *c.current, true
}

// History returns the committed records, newest first.
func (c *Controller) History() []history.Record {
	return c.history.Records()
}

// HistoryStore exposes the underlying history for persistence.
func (c *Controller) HistoryStore() *history.History {
	return c.history
}
