package assessment

import (
	"github.com/cyberpath/cyberpath-engine/internal/session"
)

// SubmitResponse validates an answer against the catalog and records it on
// the session. It returns false without touching the session when the
// question id or option value is unknown; callers use the boolean to report
// per-field validation feedback without an error unwind.
//
// Re-answering a question overwrites the earlier response's value and
// latency in its existing slot.
func (e *Engine) SubmitResponse(sess *session.Session, questionID, optionValue string, latencyMS int64) bool {
	q, ok := e.catalog.Get(questionID)
	if !ok {
		return false
	}
	if _, ok := q.Option(optionValue); !ok {
		return false
	}
	for i := range sess.Responses {
		if sess.Responses[i].QuestionID == questionID {
			sess.Responses[i].Value = optionValue
			sess.Responses[i].LatencyMS = latencyMS
			return true
		}
	}
	sess.Responses = append(sess.Responses, session.Response{
		QuestionID: questionID,
		Value:      optionValue,
		LatencyMS:  latencyMS,
	})
	return true
}
