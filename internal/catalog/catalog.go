// Package catalog defines the assessment question bank: an immutable ordered
// list of weighted multiple-choice questions, indexed by id for lookup.
package catalog

import (
	"fmt"
)

// Category groups questions that share one scoring weight multiplier.
type Category string

const (
	TechnicalAptitude  Category = "technical_aptitude"
	ProblemSolving     Category = "problem_solving"
	ScenarioPreference Category = "scenario_preference"
	WorkStyle          Category = "work_style"
)

// CategoryWeights are the fixed multipliers applied to option weights during
// scoring. Static configuration, never derived at runtime.
var CategoryWeights = map[Category]float64{
	TechnicalAptitude:  1.0,
	ProblemSolving:     1.2,
	ScenarioPreference: 1.5,
	WorkStyle:          0.8,
}

// Option is one selectable answer. Weights maps track keys to non-negative
// points; tracks absent from the map score zero for this option.
type Option struct {
	Value   string         `json:"value" yaml:"value"`
	Text    string         `json:"text" yaml:"text"`
	Weights map[string]int `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// Question is a single assessment prompt with at least two options.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Category Category `json:"category" yaml:"category"`
	Options  []Option `json:"options" yaml:"options"`
}

// Option returns the option with the given value code.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Catalog is the ordered, immutable question bank with an id index built
// once at construction.
type Catalog struct {
	questions []Question
	byID      map[string]int
}

// New builds a catalog from an ordered question list. It rejects duplicate
// ids, unknown categories, and questions with fewer than two options.
func New(questions []Question) (*Catalog, error) {
	c := &Catalog{
		questions: questions,
		byID:      make(map[string]int, len(questions)),
	}
	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: empty id", i)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("question %q: duplicate id", q.ID)
		}
		if _, ok := CategoryWeights[q.Category]; !ok {
			return nil, fmt.Errorf("question %q: unknown category %q", q.ID, q.Category)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %q: needs at least 2 options, has %d", q.ID, len(q.Options))
		}
		seen := map[string]bool{}
		for _, o := range q.Options {
			if o.Value == "" {
				return nil, fmt.Errorf("question %q: option with empty value", q.ID)
			}
			if seen[o.Value] {
				return nil, fmt.Errorf("question %q: duplicate option value %q", q.ID, o.Value)
			}
			seen[o.Value] = true
			for track, w := range o.Weights {
				if w < 0 {
					return nil, fmt.Errorf("question %q option %q: negative weight for %q", q.ID, o.Value, track)
				}
			}
		}
		c.byID[q.ID] = i
	}
	return c, nil
}

// Get looks a question up by id.
func (c *Catalog) Get(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Questions returns the full question list in catalog order. Callers must
// not mutate the returned slice.
func (c *Catalog) Questions() []Question { return c.questions }

// Len is the number of questions in the catalog.
func (c *Catalog) Len() int { return len(c.questions) }
