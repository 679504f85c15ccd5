package assessment

import (
	"github.com/cyberpath/cyberpath-engine/internal/session"
)

// Progress is a point-in-time completion snapshot.
type Progress struct {
	CurrentQuestionIndex      int     `json:"current_question_index"`
	TotalQuestions            int     `json:"total_questions"`
	Percentage                float64 `json:"percentage"`
	EstimatedSecondsRemaining int     `json:"estimated_seconds_remaining"`
}

// Progress reports how far through the catalog a session is. Pure function
// of session and catalog size.
func (e *Engine) Progress(sess *session.Session) Progress {
	total := e.catalog.Len()
	answered := sess.Answered()

	p := Progress{
		CurrentQuestionIndex: answered,
		TotalQuestions:       total,
	}
	if total > 0 {
		p.Percentage = float64(answered) / float64(total) * 100
		if p.Percentage > 100 {
			p.Percentage = 100
		}
	}
	if remaining := total - answered; remaining > 0 {
		p.EstimatedSecondsRemaining = remaining * e.secondsPerQuestion
	}
	return p
}
