package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// AuthService handles the login/register form action and session lifecycle.
type AuthService struct {
	repo       ports.SiteRepository
	hasher     ports.PasswordHasher
	sessionTTL time.Duration
	log        *slog.Logger
}

func NewAuthService(repo ports.SiteRepository, hasher ports.PasswordHasher, sessionTTL time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, sessionTTL: sessionTTL, log: log}
}

// LoginForm carries the raw fields of a /login submission.
type LoginForm struct {
	LoginType  string
	Username   string
	Password   string
	RedirectTo string
}

// AuthResult is the outcome of a login/register submission. Exactly one of
// Rejection and Session is set.
type AuthResult struct {
	Rejection  *FormRejection
	User       *domain.User
	Session    *domain.Session
	RedirectTo string
}

// Submit runs the login/register orchestration: validate fields, dispatch on
// loginType, then either mint a session or reject with a structured payload.
func (s *AuthService) Submit(ctx context.Context, form LoginForm) (*AuthResult, error) {
	redirectTo := form.RedirectTo
	if redirectTo == "" {
		redirectTo = domain.DefaultRedirectTo
	}

	fields := map[string]string{
		"loginType": form.LoginType,
		"username":  form.Username,
		"password":  form.Password,
	}

	fieldErrors := map[string]string{}
	if msg := domain.ValidateUsername(form.Username); msg != "" {
		fieldErrors["username"] = msg
	}
	if msg := domain.ValidatePassword(form.Password); msg != "" {
		fieldErrors["password"] = msg
	}
	if len(fieldErrors) > 0 {
		return &AuthResult{Rejection: &FormRejection{
			FieldErrors: fieldErrors,
			Fields:      fields,
		}}, nil
	}

	switch domain.LoginType(form.LoginType) {
	case domain.LoginTypeLogin:
		return s.login(ctx, form.Username, form.Password, redirectTo, fields)
	case domain.LoginTypeRegister:
		return s.register(ctx, form.Username, form.Password, redirectTo, fields)
	default:
		return &AuthResult{Rejection: &FormRejection{
			FormError: "Login type invalid",
			Fields:    fields,
		}}, nil
	}
}

// login verifies credentials. Unknown username and wrong password produce the
// same rejection so the response never reveals which credential failed.
func (s *AuthService) login(ctx context.Context, username, password, redirectTo string, fields map[string]string) (*AuthResult, error) {
	const combinationIncorrect = "Username/Password combination is incorrect"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return &AuthResult{Rejection: &FormRejection{
				FormError: combinationIncorrect,
				Fields:    fields,
			}}, nil
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return &AuthResult{Rejection: &FormRejection{
			FormError: combinationIncorrect,
			Fields:    fields,
		}}, nil
	}

	return s.createSession(ctx, user, redirectTo)
}

// register creates a new user. Unlike login, an existing username is reported
// as such.
func (s *AuthService) register(ctx context.Context, username, password, redirectTo string, fields map[string]string) (*AuthResult, error) {
	alreadyExists := fmt.Sprintf("User with username %s already exists", username)

	_, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return &AuthResult{Rejection: &FormRejection{
			FormError: alreadyExists,
			Fields:    fields,
		}}, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, username, hash)
	if err != nil {
		// The unique constraint can still fire between the lookup above and
		// the insert; report it the same way as the lookup hit.
		if domain.IsConflict(err) {
			return &AuthResult{Rejection: &FormRejection{
				FormError: alreadyExists,
				Fields:    fields,
			}}, nil
		}
		s.log.Error("user creation failed", "username", username, "error", err)
		return &AuthResult{Rejection: &FormRejection{
			FormError: "Something went wrong trying to create a new user",
			Fields:    fields,
		}}, nil
	}

	return s.createSession(ctx, user, redirectTo)
}

func (s *AuthService) createSession(ctx context.Context, user *domain.User, redirectTo string) (*AuthResult, error) {
	session, err := s.repo.CreateSession(ctx, user.ID, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	s.log.Info("session created", "user_id", user.ID, "redirect_to", redirectTo)
	return &AuthResult{
		User:       user,
		Session:    session,
		RedirectTo: redirectTo,
	}, nil
}

// CurrentUser resolves a session token to its user. An empty, unknown, or
// expired token yields nil without error; broken storage is an error.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, nil
	}
	user, err := s.repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Logout destroys the session behind the token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, token)
}
