package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// memRepo is an in-memory ports.SiteRepository for tests.
type memRepo struct {
	users    map[uuid.UUID]*domain.User
	jokes    []*domain.Joke
	sessions map[string]*domain.Session

	// clock advances on every joke insert so ordering is deterministic.
	clock time.Time

	// err, when set, is returned by every method to simulate a broken store.
	err error
}

var _ ports.SiteRepository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		users:    make(map[uuid.UUID]*domain.User),
		sessions: make(map[string]*domain.Session),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memRepo) Health(ctx context.Context) error {
	return m.err
}

func (m *memRepo) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return nil, domain.NewConflictError("username already taken")
		}
	}
	u := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memRepo) CreateJoke(ctx context.Context, name, content string, jokesterID *uuid.UUID) (*domain.Joke, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.clock = m.clock.Add(time.Second)
	j := &domain.Joke{
		ID:         uuid.New(),
		Name:       name,
		Content:    content,
		JokesterID: jokesterID,
		CreatedAt:  m.clock,
	}
	m.jokes = append(m.jokes, j)
	return j, nil
}

func (m *memRepo) GetJokeByID(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, j := range m.jokes {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, domain.NewNotFoundError("joke")
}

func (m *memRepo) GetRandomJoke(ctx context.Context) (*domain.Joke, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.jokes) == 0 {
		return nil, domain.NewNotFoundError("joke")
	}
	return m.jokes[0], nil
}

func (m *memRepo) ListRecentJokes(ctx context.Context, limit int) ([]domain.JokeListItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	sorted := make([]*domain.Joke, len(m.jokes))
	copy(sorted, m.jokes)
	sort.Slice(sorted, func(i, k int) bool {
		return sorted[i].CreatedAt.After(sorted[k].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	items := make([]domain.JokeListItem, 0, len(sorted))
	for _, j := range sorted {
		items = append(items, domain.JokeListItem{ID: j.ID, Name: j.Name})
	}
	return items, nil
}

func (m *memRepo) CreateSession(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	m.sessions[s.Token] = s
	return s, nil
}

func (m *memRepo) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.sessions[token]; ok {
		return s, nil
	}
	return nil, domain.NewNotFoundError("session")
}

func (m *memRepo) DeleteSession(ctx context.Context, token string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.sessions, token)
	return nil
}

// fakeHasher is a deterministic ports.PasswordHasher for tests.
type fakeHasher struct{}

var _ ports.PasswordHasher = fakeHasher{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}
