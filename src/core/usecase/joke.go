package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// JokeService handles joke creation and reads.
type JokeService struct {
	repo ports.SiteRepository
	log  *slog.Logger
}

func NewJokeService(repo ports.SiteRepository, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, log: log}
}

// JokeForm carries the raw fields of a new-joke submission. Nil means the
// field was absent from the form.
type JokeForm struct {
	Name    *string
	Content *string
}

// JokeCreateResult is the outcome of a new-joke submission. Exactly one of
// Rejection and Joke is set.
type JokeCreateResult struct {
	Rejection *FormRejection
	Joke      *domain.Joke
}

// Create validates the submission and persists the joke. jokesterID is the
// current session user, or nil for anonymous submissions.
func (s *JokeService) Create(ctx context.Context, form JokeForm, jokesterID *uuid.UUID) (*JokeCreateResult, error) {
	fieldErrors := map[string]string{}
	if msg := domain.ValidateJokeName(form.Name); msg != "" {
		fieldErrors["name"] = msg
	}
	if msg := domain.ValidateJokeContent(form.Content); msg != "" {
		fieldErrors["content"] = msg
	}

	if len(fieldErrors) > 0 {
		fields := map[string]string{}
		if form.Name != nil {
			fields["name"] = *form.Name
		}
		if form.Content != nil {
			fields["content"] = *form.Content
		}
		return &JokeCreateResult{Rejection: &FormRejection{
			FieldErrors: fieldErrors,
			Fields:      fields,
		}}, nil
	}

	joke, err := s.repo.CreateJoke(ctx, *form.Name, *form.Content, jokesterID)
	if err != nil {
		return nil, err
	}
	s.log.Info("joke created", "joke_id", joke.ID)
	return &JokeCreateResult{Joke: joke}, nil
}

// ListView bundles the jokes listing with the resolved current user.
type ListView struct {
	User  *domain.User
	Jokes []domain.JokeListItem
}

// List returns the most recent jokes (id+name, newest first) together with
// the current user, which may be nil.
func (s *JokeService) List(ctx context.Context, user *domain.User) (*ListView, error) {
	jokes, err := s.repo.ListRecentJokes(ctx, domain.RecentJokesLimit)
	if err != nil {
		return nil, err
	}
	return &ListView{User: user, Jokes: jokes}, nil
}

// Get returns a single joke by id.
func (s *JokeService) Get(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	return s.repo.GetJokeByID(ctx, id)
}

// Random returns one joke picked at random.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	return s.repo.GetRandomJoke(ctx)
}
