package assessment

import (
	"github.com/cyberpath/cyberpath-engine/internal/catalog"
	"github.com/cyberpath/cyberpath-engine/internal/session"
	"github.com/cyberpath/cyberpath-engine/internal/tracks"
)

// CalculateScores computes the weighted, normalized per-track scores for a
// session. Every track appears in the result, in [0, 100]; values are not
// rounded here.
//
// Raw sums accumulate each selected option's track weights multiplied by the
// question's category weight. The normalization denominator is the mean
// per-question ceiling across the whole catalog (the best single-option
// weight of each question, category-weighted) scaled by the number of
// responses given, so partial assessments normalize fairly against full
// ones. A non-positive denominator means every track scores zero.
func (e *Engine) CalculateScores(sess *session.Session) map[string]float64 {
	raw := make(map[string]float64, tracks.Count())
	for _, t := range tracks.All() {
		raw[t.Key] = 0
	}

	for _, r := range sess.Responses {
		q, ok := e.catalog.Get(r.QuestionID)
		if !ok {
			continue
		}
		opt, ok := q.Option(r.Value)
		if !ok {
			continue
		}
		cw := catalog.CategoryWeights[q.Category]
		for track, w := range opt.Weights {
			raw[track] += float64(w) * cw
		}
	}

	denom := e.meanQuestionCeiling() * float64(len(sess.Responses))
	scores := make(map[string]float64, len(raw))
	for track, sum := range raw {
		if denom <= 0 {
			scores[track] = 0
			continue
		}
		s := sum / denom * 100
		if s > 100 {
			s = 100
		}
		if s < 0 {
			s = 0
		}
		scores[track] = s
	}
	return scores
}

// meanQuestionCeiling averages, over the full catalog, each question's
// maximum single-option weight multiplied by its category weight.
func (e *Engine) meanQuestionCeiling() float64 {
	qs := e.catalog.Questions()
	if len(qs) == 0 {
		return 0
	}
	var total float64
	for _, q := range qs {
		maxW := 0
		for _, o := range q.Options {
			for _, w := range o.Weights {
				if w > maxW {
					maxW = w
				}
			}
		}
		total += float64(maxW) * catalog.CategoryWeights[q.Category]
	}
	return total / float64(len(qs))
}
