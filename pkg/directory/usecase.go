package directory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UseCase describes account creation, authentication and the per-user
// registration set.
type UseCase interface {
	Create(ctx context.Context, in NewUserInput) (PublicProfile, error)
	Authenticate(ctx context.Context, email, password string) (PublicProfile, error)
	RegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddRegisteredEvent(ctx context.Context, userID uuid.UUID, eventID string) error
}

type service struct {
	repo Repository
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, in NewUserInput) (PublicProfile, error) {
	// Fast path only; the real guarantee is the unique index behind repo.Create.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return PublicProfile{}, ErrDuplicateEmail
	} else if !errors.Is(err, ErrUnknownEmail) {
		return PublicProfile{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return PublicProfile{}, err
	}

	user := User{
		ID:           uuid.New(),
		Name:         in.Name,
		Gender:       in.Gender,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return PublicProfile{}, err
	}
	return user.Public(), nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (PublicProfile, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return PublicProfile{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return PublicProfile{}, ErrWrongPassword
	}
	return user.Public(), nil
}

func (s *service) RegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ids, err := s.repo.RegisteredEventIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *service) AddRegisteredEvent(ctx context.Context, userID uuid.UUID, eventID string) error {
	return s.repo.AddRegisteredEvent(ctx, userID, eventID)
}
