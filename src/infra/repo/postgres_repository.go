// Package repo contains the PostgreSQL implementation of the repository ports.
package repo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/db"
)

// PostgresRepository implements ports.SiteRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ ports.SiteRepository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, username, passwordHash).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

// Jokes

func (r *PostgresRepository) CreateJoke(ctx context.Context, name, content string, jokesterID *uuid.UUID) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (name, content, jokester_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, content, jokester_id, created_at
	`
	var j domain.Joke
	err := r.pool.QueryRow(ctx, q, name, content, jokesterID).Scan(&j.ID, &j.Name, &j.Content, &j.JokesterID, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) GetJokeByID(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	const q = `
		SELECT id, name, content, jokester_id, created_at
		FROM jokes
		WHERE id = $1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, id).Scan(&j.ID, &j.Name, &j.Content, &j.JokesterID, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) GetRandomJoke(ctx context.Context) (*domain.Joke, error) {
	// random() is fine at this table size; revisit if jokes ever number
	// in the millions.
	const q = `
		SELECT id, name, content, jokester_id, created_at
		FROM jokes
		ORDER BY random()
		LIMIT 1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q).Scan(&j.ID, &j.Name, &j.Content, &j.JokesterID, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) ListRecentJokes(ctx context.Context, limit int) ([]domain.JokeListItem, error) {
	const q = `
		SELECT id, name
		FROM jokes
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.JokeListItem, 0, limit)
	for rows.Next() {
		var item domain.JokeListItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Sessions

func (r *PostgresRepository) CreateSession(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*domain.Session, error) {
	const q = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING token, user_id, created_at, expires_at
	`
	token := uuid.New()
	expiresAt := time.Now().Add(ttl)

	var s domain.Session
	var tok uuid.UUID
	err := r.pool.QueryRow(ctx, q, token, userID, expiresAt).Scan(&tok, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return nil, err
	}
	s.Token = tok.String()
	return &s, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	tok, err := uuid.Parse(token)
	if err != nil {
		// Malformed cookies resolve the same as unknown tokens.
		return nil, domain.NewNotFoundError("session")
	}

	const q = `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1 AND expires_at > now()
	`
	var s domain.Session
	var dbTok uuid.UUID
	if err := r.pool.QueryRow(ctx, q, tok).Scan(&dbTok, &s.UserID, &s.CreatedAt, &s.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("session")
		}
		return nil, err
	}
	s.Token = dbTok.String()
	return &s, nil
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, token string) error {
	tok, err := uuid.Parse(token)
	if err != nil {
		return nil
	}
	const q = `DELETE FROM sessions WHERE token = $1`
	_, err = r.pool.Exec(ctx, q, tok)
	return err
}
