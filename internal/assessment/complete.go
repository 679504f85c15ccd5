package assessment

import (
	"fmt"
	"time"

	"github.com/cyberpath/cyberpath-engine/internal/session"
	"github.com/cyberpath/cyberpath-engine/internal/tracks"
)

// secondaryTrackFloor is the minimum rounded score the second-ranked track
// needs to be surfaced as a secondary recommendation.
const secondaryTrackFloor = 50

// Result is the assembled outcome of completing a session.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	PrimaryTrack    string           `json:"primary_track"`
	SecondaryTrack  string           `json:"secondary_track,omitempty"`
	Summary         string           `json:"summary"`
	Insights        DeepInsight      `json:"insights"`
}

// InsufficientResponsesError reports a completion attempt below the required
// answer minimum, carrying the numbers so callers can render an actionable
// message.
type InsufficientResponsesError struct {
	Required int
	Answered int
}

func (e *InsufficientResponsesError) Error() string {
	return fmt.Sprintf("assessment: %d responses answered, %d required to complete", e.Answered, e.Required)
}

// Complete runs scoring, recommendation and insight generation, freezes the
// outcome onto the session (completion timestamp, score map, primary track)
// and returns the assembled result.
//
// The engine does not detect a repeated completion call; single invocation
// per session is part of the caller contract, and Service enforces it.
func (e *Engine) Complete(sess *session.Session) (*Result, error) {
	if answered := sess.Answered(); answered < e.minResponses {
		return nil, &InsufficientResponsesError{Required: e.minResponses, Answered: answered}
	}

	scores := e.CalculateScores(sess)
	recs := e.GenerateRecommendations(scores)
	insights := e.GenerateDeepInsights(sess, scores, recs)

	top := recs[0]
	res := &Result{
		Recommendations: recs,
		PrimaryTrack:    top.TrackKey,
		Insights:        insights,
	}
	if recs[1].Score >= secondaryTrackFloor {
		res.SecondaryTrack = recs[1].TrackKey
	}
	res.Summary = summaryText(sess.Answered(), top, res.SecondaryTrack)

	now := time.Now().UTC()
	sess.CompletedAt = &now
	sess.Scores = scores
	sess.PrimaryTrack = top.TrackKey
	return res, nil
}

func summaryText(answered int, top Recommendation, secondary string) string {
	s := fmt.Sprintf("Across %d responses your strongest alignment is %s at a %.1f%% match (%s confidence).",
		answered, top.TrackName, top.Score, top.Confidence)
	if secondary != "" {
		if t, ok := tracks.Get(secondary); ok {
			s += fmt.Sprintf(" %s is a strong secondary direction.", t.Name)
		}
	}
	return s
}
