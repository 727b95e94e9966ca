package postgres

import (
	"context"

	"github.com/campushub/clubevents/pkg/catalog"
	storage "github.com/campushub/clubevents/pkg/storage/postgres"
)

// EventRepository implements catalog.Repository backed by PostgreSQL (pgx).
// The internal bigserial key stays internal; callers only ever see event_id.
type EventRepository struct {
	store *storage.Handle
}

func NewEventRepository(store *storage.Handle) *EventRepository {
	return &EventRepository{store: store}
}

// EnsureSchema creates the events table. Called once the store connects, not
// at construction, because the handle may not be ready yet.
func (r *EventRepository) EnsureSchema(ctx context.Context) error {
	pool, err := r.store.Acquire()
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			event_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			club TEXT NOT NULL,
			description TEXT NOT NULL,
			event_date TEXT NOT NULL,
			event_time TEXT NOT NULL,
			venue TEXT NOT NULL,
			image TEXT NOT NULL,
			ended BOOLEAN NOT NULL DEFAULT FALSE
		);
	`)
	return err
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	pool, err := r.store.Acquire()
	if err != nil {
		return 0, err
	}
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EventRepository) InsertBatch(ctx context.Context, events []catalog.Event) error {
	pool, err := r.store.Acquire()
	if err != nil {
		return err
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, e := range events {
		_, err = tx.Exec(ctx, `
			INSERT INTO events (event_id, name, club, description, event_date, event_time, venue, image, ended)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (event_id) DO NOTHING
		`, e.EventID, e.Name, e.Club, e.Description, e.Date, e.Time, e.Venue, e.Image, e.Ended)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *EventRepository) ListAll(ctx context.Context) ([]catalog.Event, error) {
	pool, err := r.store.Acquire()
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `
		SELECT event_id, name, club, description, event_date, event_time, venue, image, ended
		FROM events ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *EventRepository) GetByEventIDs(ctx context.Context, ids []string) ([]catalog.Event, error) {
	pool, err := r.store.Acquire()
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `
		SELECT event_id, name, club, description, event_date, event_time, venue, image, ended
		FROM events WHERE event_id = ANY($1) ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

type eventRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows eventRows) ([]catalog.Event, error) {
	res := []catalog.Event{}
	for rows.Next() {
		var e catalog.Event
		if err := rows.Scan(&e.EventID, &e.Name, &e.Club, &e.Description, &e.Date, &e.Time, &e.Venue, &e.Image, &e.Ended); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
