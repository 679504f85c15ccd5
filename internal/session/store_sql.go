package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SQLStore persists sessions in a relational store. Responses and scores are
// kept as JSON columns; the engine never queries inside them.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Create(ctx context.Context, userID string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Responses: []Response{},
		StartedAt: time.Now().UTC(),
	}
	rj, _ := json.Marshal(sess.Responses)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, responses_json, started_at) VALUES ($1,$2,$3,$4)`,
		sess.ID, sess.UserID, string(rj), sess.StartedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, responses_json, started_at, completed_at, scores_json, primary_track
		 FROM sessions WHERE id=$1`, id)
	return scanSession(row)
}

func (s *SQLStore) Save(ctx context.Context, sess *Session) error {
	rj, err := json.Marshal(sess.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}
	var sj sql.NullString
	if sess.Scores != nil {
		b, err := json.Marshal(sess.Scores)
		if err != nil {
			return fmt.Errorf("encode scores: %w", err)
		}
		sj = sql.NullString{String: string(b), Valid: true}
	}
	var completed sql.NullInt64
	if sess.CompletedAt != nil {
		completed = sql.NullInt64{Int64: sess.CompletedAt.Unix(), Valid: true}
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET responses_json=$1, completed_at=$2, scores_json=$3, primary_track=$4 WHERE id=$5`,
		string(rj), completed, sj, sess.PrimaryTrack, sess.ID)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string) ([]*Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, responses_json, started_at, completed_at, scores_json, primary_track
		 FROM sessions WHERE user_id=$1 ORDER BY started_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	var out []*Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var (
		sess      Session
		rj        string
		startedAt int64
		completed sql.NullInt64
		sj        sql.NullString
		primary   sql.NullString
	)
	err := row.Scan(&sess.ID, &sess.UserID, &rj, &startedAt, &completed, &sj, &primary)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	if err := json.Unmarshal([]byte(rj), &sess.Responses); err != nil {
		// A corrupt row shouldn't take the whole listing down.
		slog.Warn("session has unreadable responses_json", "session", sess.ID, "error", err)
		sess.Responses = []Response{}
	}
	sess.StartedAt = time.Unix(startedAt, 0).UTC()
	if completed.Valid {
		t := time.Unix(completed.Int64, 0).UTC()
		sess.CompletedAt = &t
	}
	if sj.Valid && sj.String != "" {
		if err := json.Unmarshal([]byte(sj.String), &sess.Scores); err != nil {
			return nil, fmt.Errorf("scan session %s scores: %w", sess.ID, err)
		}
	}
	sess.PrimaryTrack = primary.String
	return &sess, nil
}

var _ Store = (*SQLStore)(nil)
