package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/cyberpath/cyberpath-engine/internal/session"
)

// Typed causes behind the engine's soft-fail boolean, plus the completion
// guard. Collaborators map these onto per-field validation responses.
var (
	ErrUnknownQuestion  = errors.New("unknown question id")
	ErrInvalidOption    = errors.New("invalid option value")
	ErrAlreadyCompleted = errors.New("session already completed")
)

// Service orchestrates the engine over a session store: it loads, applies
// one engine operation, and saves. It does not make sessions safe for
// concurrent mutation; last writer wins per question, and serializing access
// to one session remains the caller's job.
type Service struct {
	store  session.Store
	engine *Engine
}

func NewService(store session.Store, engine *Engine) *Service {
	return &Service{store: store, engine: engine}
}

// Start creates a fresh session for a user.
func (s *Service) Start(ctx context.Context, userID string) (*session.Session, error) {
	return s.store.Create(ctx, userID)
}

// Get returns the session as stored.
func (s *Service) Get(ctx context.Context, id string) (*session.Session, error) {
	return s.store.Get(ctx, id)
}

// Submit records an answer, translating the engine's boolean refusal into a
// typed cause.
func (s *Service) Submit(ctx context.Context, sessionID, questionID, optionValue string, latencyMS int64) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Completed() {
		return ErrAlreadyCompleted
	}
	if !s.engine.SubmitResponse(sess, questionID, optionValue, latencyMS) {
		if _, ok := s.engine.catalog.Get(questionID); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
		}
		return fmt.Errorf("%w: %s for question %s", ErrInvalidOption, optionValue, questionID)
	}
	return s.store.Save(ctx, sess)
}

// Progress returns the completion snapshot for a session.
func (s *Service) Progress(ctx context.Context, sessionID string) (Progress, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Progress{}, err
	}
	return s.engine.Progress(sess), nil
}

// Complete finalizes a session once and persists the frozen outcome.
// Completing twice is rejected rather than recomputed: the stored primary
// track must never drift from what was first returned.
func (s *Service) Complete(ctx context.Context, sessionID string) (*Result, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Completed() {
		return nil, ErrAlreadyCompleted
	}
	res, err := s.engine.Complete(sess)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return res, nil
}

// UserStats aggregates a user's sessions for dashboard-style consumers.
type UserStats struct {
	Sessions      int     `json:"sessions"`
	Completed     int     `json:"completed"`
	TotalAnswered int     `json:"total_answered"`
	MeanLatencyMS float64 `json:"mean_latency_ms"`
	LatestPrimary string  `json:"latest_primary,omitempty"`
}

// Stats summarizes all of a user's sessions.
func (s *Service) Stats(ctx context.Context, userID string) (UserStats, error) {
	sessions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	var st UserStats
	var latencySum int64
	var latencyN int
	for _, sess := range sessions {
		st.Sessions++
		if sess.Completed() {
			st.Completed++
			if st.LatestPrimary == "" {
				st.LatestPrimary = sess.PrimaryTrack
			}
		}
		st.TotalAnswered += sess.Answered()
		for _, r := range sess.Responses {
			if r.LatencyMS > 0 {
				latencySum += r.LatencyMS
				latencyN++
			}
		}
	}
	if latencyN > 0 {
		st.MeanLatencyMS = float64(latencySum) / float64(latencyN)
	}
	return st, nil
}
