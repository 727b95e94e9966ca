// Package ledger correlates the user directory and the event catalog. It is the
// only place that relates the two: the directory stores event ids, the catalog
// resolves them, and neither knows about the other.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/clubevents/pkg/catalog"
	"github.com/campushub/clubevents/pkg/directory"
)

// UseCase describes registration and "my events" lookups.
type UseCase interface {
	Register(ctx context.Context, userID uuid.UUID, eventID string) error
	ListUserEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	ListUserEvents(ctx context.Context, userID uuid.UUID) ([]catalog.Event, error)
}

type service struct {
	users  directory.UseCase
	events catalog.UseCase
}

// NewService returns default implementation of UseCase.
func NewService(users directory.UseCase, events catalog.UseCase) UseCase {
	return &service{users: users, events: events}
}

// Register records that the user joined the event. The event id is not checked
// against the catalog; an id that never resolves simply stays invisible in
// ListUserEvents.
func (s *service) Register(ctx context.Context, userID uuid.UUID, eventID string) error {
	return s.users.AddRegisteredEvent(ctx, userID, eventID)
}

func (s *service) ListUserEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.users.RegisteredEventIDs(ctx, userID)
}

// ListUserEvents resolves the user's registration set against the catalog.
// Ids with no catalog entry are dropped silently.
func (s *service) ListUserEvents(ctx context.Context, userID uuid.UUID) ([]catalog.Event, error) {
	ids, err := s.users.RegisteredEventIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalog.Event{}, nil
	}
	return s.events.GetByEventIDs(ctx, ids)
}
