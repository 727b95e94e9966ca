package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushub/clubevents/pkg/directory"
	storage "github.com/campushub/clubevents/pkg/storage/postgres"
)

// UserRepository implements directory.Repository backed by PostgreSQL (pgx).
// The registration set lives in a join table whose composite primary key gives
// set-union semantics in a single atomic insert.
type UserRepository struct {
	store *storage.Handle
}

func NewUserRepository(store *storage.Handle) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	pool, err := r.store.Acquire()
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			gender TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone_number TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS user_event_registrations (
			user_id UUID NOT NULL REFERENCES users(id),
			event_id TEXT NOT NULL,
			registered_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, event_id)
		);
	`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user directory.User) error {
	pool, err := r.store.Acquire()
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, gender, email, phone_number, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Name, user.Gender, user.Email, user.PhoneNumber, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return directory.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (directory.User, error) {
	pool, err := r.store.Acquire()
	if err != nil {
		return directory.User{}, err
	}
	row := pool.QueryRow(ctx, `
		SELECT id, name, gender, email, phone_number, password_hash, created_at
		FROM users WHERE email = $1
	`, email)
	var user directory.User
	var createdAt time.Time
	if err := row.Scan(&user.ID, &user.Name, &user.Gender, &user.Email, &user.PhoneNumber, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return directory.User{}, directory.ErrUnknownEmail
		}
		return directory.User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

func (r *UserRepository) RegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	pool, err := r.store.Acquire()
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `
		SELECT event_id FROM user_event_registrations
		WHERE user_id = $1 ORDER BY registered_at, event_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *UserRepository) AddRegisteredEvent(ctx context.Context, userID uuid.UUID, eventID string) error {
	pool, err := r.store.Acquire()
	if err != nil {
		return err
	}
	cmd, err := pool.Exec(ctx, `
		INSERT INTO user_event_registrations (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`, userID, eventID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return directory.ErrUserNotFound
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return directory.ErrAlreadyRegistered
	}
	return nil
}
