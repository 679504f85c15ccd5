package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cyberpath/cyberpath-engine/internal/db"
	"github.com/cyberpath/cyberpath-engine/internal/session"
)

func openSQLite(t *testing.T) *session.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "sessions.db") + "?mode=rwc"
	conn, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return session.NewSQLStore(conn, "sqlite")
}

func TestSQLStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	s, err := store.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s.Responses = append(s.Responses,
		session.Response{QuestionID: "q1", Value: "a", LatencyMS: 700},
		session.Response{QuestionID: "q2", Value: "c"},
	)
	now := time.Now().UTC().Truncate(time.Second)
	s.CompletedAt = &now
	s.Scores = map[string]float64{"network_defense": 62.5, "grc": 10}
	s.PrimaryTrack = "network_defense"
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Answered() != 2 || got.Responses[0].LatencyMS != 700 {
		t.Fatalf("responses did not round-trip: %+v", got.Responses)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Fatalf("completed_at did not round-trip: %v", got.CompletedAt)
	}
	if got.Scores["network_defense"] != 62.5 {
		t.Fatalf("scores did not round-trip: %+v", got.Scores)
	}
	if got.PrimaryTrack != "network_defense" {
		t.Fatalf("primary track did not round-trip: %q", got.PrimaryTrack)
	}
}

func TestSQLStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	if err := store.Save(ctx, &session.Session{ID: "missing", Responses: []session.Response{}}); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("Save: expected ErrNotFound, got %v", err)
	}
}

func TestSQLStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	if _, err := store.Create(ctx, "user-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, "user-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, "user-2"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	for _, s := range got {
		if s.UserID != "user-1" {
			t.Fatalf("listing leaked another user's session: %+v", s)
		}
	}
}
