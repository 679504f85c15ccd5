// Package assessment implements the scoring and recommendation engine: pure
// functions over a Session plus the static question and track catalogs. No
// operation here blocks or performs I/O; the only side effects are on the
// session value passed in.
package assessment

import (
	"github.com/cyberpath/cyberpath-engine/internal/catalog"
)

const (
	defaultMinResponses       = 6
	defaultSecondsPerQuestion = 30
)

// Engine evaluates sessions against one immutable question catalog.
type Engine struct {
	catalog            *catalog.Catalog
	minResponses       int
	secondsPerQuestion int
}

type Option func(*Engine)

// WithMinResponses sets the distinct-answer count required by Complete.
func WithMinResponses(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minResponses = n
		}
	}
}

// WithSecondsPerQuestion sets the per-question constant behind the
// remaining-time estimate.
func WithSecondsPerQuestion(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.secondsPerQuestion = n
		}
	}
}

func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:            cat,
		minResponses:       defaultMinResponses,
		secondsPerQuestion: defaultSecondsPerQuestion,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}
