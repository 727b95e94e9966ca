package directory

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account. PasswordHash is the stored credential (bcrypt);
// it never leaves this package through PublicProfile.
type User struct {
	ID           uuid.UUID
	Name         string
	Gender       string
	Email        string
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicProfile is the subset of User that handlers may expose.
type PublicProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public strips the credential and contact details from a User.
func (u User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewUserInput carries the signup fields before hashing.
type NewUserInput struct {
	Name        string
	Gender      string
	Email       string
	PhoneNumber string
	Password    string
}
