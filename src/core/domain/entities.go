package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoginType selects the branch of the /login action.
type LoginType string

const (
	LoginTypeLogin    LoginType = "login"
	LoginTypeRegister LoginType = "register"
)

// User represents a registered jokester.
// PasswordHash is a bcrypt digest; the raw password is never stored.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Joke represents a single joke record.
type Joke struct {
	ID         uuid.UUID
	Name       string
	Content    string
	JokesterID *uuid.UUID
	CreatedAt  time.Time
}

// JokeListItem is the id+name projection used by the jokes listing.
type JokeListItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Session binds an opaque token to a user for its lifetime.
type Session struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
