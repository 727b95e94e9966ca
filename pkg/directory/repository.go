package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrDuplicateEmail    = errors.New("user with this email already exists")
	ErrUnknownEmail      = errors.New("email not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// Repository abstracts user persistence from the domain layer.
// Implementations must enforce email uniqueness atomically: a Create racing
// another Create with the same email leaves exactly one record behind and the
// loser gets ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	// RegisteredEventIDs returns the user's registration set; an unknown user
	// yields an empty set, not an error.
	RegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	// AddRegisteredEvent is a set-union insert: ErrAlreadyRegistered when the
	// id was a member before the call, ErrUserNotFound when no such user exists.
	AddRegisteredEvent(ctx context.Context, userID uuid.UUID, eventID string) error
}
