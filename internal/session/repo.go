package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when no session has the given id.
var ErrNotFound = errors.New("session not found")

// Store is the session lifecycle contract the engine's callers depend on.
// Create and Get hand back independent copies; mutations become visible to
// other callers only through Save.
type Store interface {
	Create(ctx context.Context, userID string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	ListByUser(ctx context.Context, userID string) ([]*Session, error)
}
