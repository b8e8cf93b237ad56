// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jokebox/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository persists and looks up registered users.
type UserRepository interface {
	// CreateUser inserts a new user. Returns a conflict error when the
	// username is already taken (enforced by a unique constraint, which
	// also closes the check-then-create race between concurrent registers).
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)

	// GetUserByUsername returns the user with the given username, or a
	// not found error.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByID returns the user with the given id, or a not found error.
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// JokeRepository persists and reads joke records.
type JokeRepository interface {
	// CreateJoke inserts a new joke. jokesterID may be nil for anonymous
	// submissions.
	CreateJoke(ctx context.Context, name, content string, jokesterID *uuid.UUID) (*domain.Joke, error)

	// GetJokeByID returns a single joke, or a not found error.
	GetJokeByID(ctx context.Context, id uuid.UUID) (*domain.Joke, error)

	// GetRandomJoke returns one joke picked at random, or a not found
	// error when no jokes exist.
	GetRandomJoke(ctx context.Context) (*domain.Joke, error)

	// ListRecentJokes returns up to limit jokes as id+name projections,
	// newest first.
	ListRecentJokes(ctx context.Context, limit int) ([]domain.JokeListItem, error)
}

// SessionRepository manages opaque session tokens.
type SessionRepository interface {
	// CreateSession mints a session for the user valid for ttl.
	CreateSession(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*domain.Session, error)

	// GetSession resolves a token. Unknown or expired tokens yield a not
	// found error.
	GetSession(ctx context.Context, token string) (*domain.Session, error)

	// DeleteSession destroys a session. Deleting an unknown token is a no-op.
	DeleteSession(ctx context.Context, token string) error
}

// SiteRepository is the composite repository covering all domain operations.
type SiteRepository interface {
	Repository
	UserRepository
	JokeRepository
	SessionRepository
}
