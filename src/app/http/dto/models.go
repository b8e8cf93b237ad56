// Package dto contains Data Transfer Objects for HTTP responses.
//
// Form requests (login, new joke) are read field by field from the POST body
// rather than bound to a struct: the validators must distinguish an absent
// field from an empty one, which gin's form binding flattens.
package dto

import (
	"time"

	"jokebox/src/core/domain"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserFromDomain maps a domain user, passing nil through.
func UserFromDomain(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
	}
}

// JokeResponse is the public view of a joke.
type JokeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	JokesterID *string   `json:"jokester_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// JokeFromDomain maps a domain joke.
func JokeFromDomain(j *domain.Joke) JokeResponse {
	resp := JokeResponse{
		ID:        j.ID.String(),
		Name:      j.Name,
		Content:   j.Content,
		CreatedAt: j.CreatedAt,
	}
	if j.JokesterID != nil {
		id := j.JokesterID.String()
		resp.JokesterID = &id
	}
	return resp
}

// JokeListResponse is the payload of GET /jokes.
type JokeListResponse struct {
	User  *UserResponse         `json:"user"`
	Jokes []domain.JokeListItem `json:"jokes"`
}
