// Package batch scores input sets read from YAML or JSON files.
package batch

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/floatscore/internal/cue"
	"github.com/dotcommander/floatscore/internal/discovery"
	"github.com/dotcommander/floatscore/internal/params"
	"github.com/dotcommander/floatscore/internal/scoring"
)

// Entry is the outcome for one input set.
type Entry struct {
	Source   string // file path, with "#n" for list documents
	Parsed   params.Parsed
	Result   scoring.Result
	Label    scoring.Label
	Problems []cue.ValidationError // schema violations
	Err      error                 // decode or scoring failure
}

// OK reports whether the entry produced a result.
func (e Entry) OK() bool {
	return e.Err == nil && len(e.Problems) == 0
}

// Summary aggregates a batch run.
type Summary struct {
	Entries  []Entry
	Scored   int
	Rejected int
}

// Runner validates and scores input files.
type Runner struct {
	validator *cue.Validator
	defaults  params.Raw
}

// NewRunner loads the input schema. defaults fill fields a file leaves out.
func NewRunner(defaults params.Raw) (*Runner, error) {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, err
	}
	return &Runner{validator: v, defaults: defaults.Clone()}, nil
}

// Run scores every input set in files. A bad file never stops the run.
func (r *Runner) Run(files []discovery.File) *Summary {
	summary := &Summary{}
	for _, f := range files {
		for _, e := range r.ScoreFile(f) {
			if e.OK() {
				summary.Scored++
			} else {
				summary.Rejected++
			}
			summary.Entries = append(summary.Entries, e)
		}
	}
	return summary
}

// ScoreFile decodes f, which holds one input set or a list of them.
func (r *Runner) ScoreFile(f discovery.File) []Entry {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(f.Contents), &doc); err != nil {
		return []Entry{{Source: f.RelPath, Err: fmt.Errorf("decode %s: %w", f.Format, err)}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return []Entry{{Source: f.RelPath, Err: fmt.Errorf("empty document")}}
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		return []Entry{r.ScoreSet(f.RelPath, root)}
	case yaml.SequenceNode:
		entries := make([]Entry, 0, len(root.Content))
		for i, item := range root.Content {
			source := fmt.Sprintf("%s#%d", f.RelPath, i+1)
			if item.Kind != yaml.MappingNode {
				entries = append(entries, Entry{Source: source, Err: fmt.Errorf("expected a mapping, got %s", item.ShortTag())})
				continue
			}
			entries = append(entries, r.ScoreSet(source, item))
		}
		return entries
	default:
		return []Entry{{Source: f.RelPath, Err: fmt.Errorf("expected a mapping or a list of mappings")}}
	}
}

// ScoreSet validates and scores one input set given as a YAML mapping node.
// Scalar values are kept as written, so "0.120" stays "0.120".
func (r *Runner) ScoreSet(source string, node *yaml.Node) Entry {
	entry := Entry{Source: source}

	var set map[string]any
	if err := node.Decode(&set); err != nil {
		entry.Err = fmt.Errorf("decode: %w", err)
		return entry
	}

	problems, err := r.validator.ValidateInputs(set)
	if err != nil {
		entry.Err = err
		return entry
	}
	if len(problems) > 0 {
		for i := range problems {
			problems[i].File = source
		}
		entry.Problems = problems
		entry.Err = fmt.Errorf("%s", joinProblems(problems))
		return entry
	}

	raw, err := params.FromText(scalarText(node))
	if err != nil {
		entry.Err = err
		return entry
	}
	merged := r.defaults.Clone()
	for k, v := range raw {
		merged[k] = v
	}

	entry.Parsed = params.Parse(merged)
	res, err := scoring.Compute(entry.Parsed.Inputs)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Result = res
	entry.Label = scoring.Interpret(res.FinalScore)
	return entry
}

// scalarText returns the source text of each scalar value in a mapping.
func scalarText(node *yaml.Node) map[string]string {
	out := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind == yaml.ScalarNode && v.ShortTag() != "!!null" {
			out[k.Value] = v.Value
		}
	}
	return out
}

func joinProblems(problems []cue.ValidationError) string {
	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.String())
	}
	return strings.Join(msgs, "; ")
}
