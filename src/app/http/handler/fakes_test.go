package handler_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokebox/src/app/server"
	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/config"
	"jokebox/src/infra/hash"
)

const testCookieName = "jokebox_session"

// stubRepo backs the handler tests with plain maps. Handlers run one request
// at a time here, so no locking is needed.
type stubRepo struct {
	users    []*domain.User
	jokes    []*domain.Joke
	sessions map[string]*domain.Session
	seq      time.Time
}

var _ ports.SiteRepository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{
		sessions: make(map[string]*domain.Session),
		seq:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *stubRepo) Health(context.Context) error { return nil }

func (r *stubRepo) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return nil, domain.NewConflictError("username already taken")
		}
	}
	u := &domain.User{ID: uuid.New(), Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	r.users = append(r.users, u)
	return u, nil
}

func (r *stubRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (r *stubRepo) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (r *stubRepo) CreateJoke(_ context.Context, name, content string, jokesterID *uuid.UUID) (*domain.Joke, error) {
	r.seq = r.seq.Add(time.Second)
	j := &domain.Joke{ID: uuid.New(), Name: name, Content: content, JokesterID: jokesterID, CreatedAt: r.seq}
	r.jokes = append(r.jokes, j)
	return j, nil
}

func (r *stubRepo) GetJokeByID(_ context.Context, id uuid.UUID) (*domain.Joke, error) {
	for _, j := range r.jokes {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, domain.NewNotFoundError("joke")
}

func (r *stubRepo) GetRandomJoke(context.Context) (*domain.Joke, error) {
	if len(r.jokes) == 0 {
		return nil, domain.NewNotFoundError("joke")
	}
	return r.jokes[len(r.jokes)-1], nil
}

func (r *stubRepo) ListRecentJokes(_ context.Context, limit int) ([]domain.JokeListItem, error) {
	items := make([]domain.JokeListItem, 0, limit)
	// jokes are appended in creation order; walk backwards for newest first.
	for i := len(r.jokes) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, domain.JokeListItem{ID: r.jokes[i].ID, Name: r.jokes[i].Name})
	}
	return items, nil
}

func (r *stubRepo) CreateSession(_ context.Context, userID uuid.UUID, ttl time.Duration) (*domain.Session, error) {
	s := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	r.sessions[s.Token] = s
	return s, nil
}

func (r *stubRepo) GetSession(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := r.sessions[token]; ok {
		return s, nil
	}
	return nil, domain.NewNotFoundError("session")
}

func (r *stubRepo) DeleteSession(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

// newTestRouter wires the real server (middleware, routes, usecases) over the
// stub repository and the real bcrypt hasher.
func newTestRouter(repo ports.SiteRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Log:    config.LogConfig{Level: "error"},
		Session: config.SessionConfig{
			CookieName: testCookieName,
			TTL:        time.Hour,
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.New(cfg, log, repo, hash.NewBcryptHasher()).Router()
}
