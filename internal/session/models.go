// Package session defines assessment sessions and the store contract the
// engine's callers use to persist them. The engine itself only mutates the
// Session value it is handed; serializing access to one session is the
// caller's job.
package session

import "time"

// Response is one recorded answer. At most one response per question id is
// retained: re-answering overwrites value and latency in place.
type Response struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
	LatencyMS  int64  `json:"latency_ms,omitempty"`
}

// Session is a single user's pass through the assessment.
type Session struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Responses    []Response         `json:"responses"`
	StartedAt    time.Time          `json:"started_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	Scores       map[string]float64 `json:"scores,omitempty"`
	PrimaryTrack string             `json:"primary_track,omitempty"`
}

// Completed reports whether the session has been finalized.
func (s *Session) Completed() bool { return s.CompletedAt != nil }

// Answered is the number of distinct questions answered. Responses hold one
// entry per question, so this is just the slice length.
func (s *Session) Answered() int { return len(s.Responses) }

// Response returns the recorded answer for a question, if any.
func (s *Session) Response(questionID string) (Response, bool) {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return Response{}, false
}

// Clone returns a deep copy, so stores can hand out sessions without
// aliasing their internal state.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Responses = make([]Response, len(s.Responses))
	copy(cp.Responses, s.Responses)
	if s.Scores != nil {
		cp.Scores = make(map[string]float64, len(s.Scores))
		for k, v := range s.Scores {
			cp.Scores[k] = v
		}
	}
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
