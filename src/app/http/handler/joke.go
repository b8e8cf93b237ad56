// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing HTTP requests (form fields, path params, session context)
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/usecase"
)

// JokeHandler handles joke endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
}

func NewJokeHandler(jokeService *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// List handles GET /jokes: the five most recent jokes plus the current user.
func (h *JokeHandler) List(c *gin.Context) {
	view, err := h.jokeService.List(c.Request.Context(), middleware.GetCurrentUser(c))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeListResponse{
		User:  dto.UserFromDomain(view.User),
		Jokes: view.Jokes,
	})
}

// Create handles POST /jokes/new. Fields are read individually because the
// validators distinguish an absent field from an empty submitted value.
func (h *JokeHandler) Create(c *gin.Context) {
	var form usecase.JokeForm
	if name, ok := c.GetPostForm("name"); ok {
		form.Name = &name
	}
	if content, ok := c.GetPostForm("content"); ok {
		form.Content = &content
	}

	var jokesterID *uuid.UUID
	if user := middleware.GetCurrentUser(c); user != nil {
		jokesterID = &user.ID
	}

	result, err := h.jokeService.Create(c.Request.Context(), form, jokesterID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if result.Rejection != nil {
		response.FormRejected(c, result.Rejection)
		return
	}

	response.Redirect(c, "/jokes/"+result.Joke.ID.String())
}

// Get handles GET /jokes/:joke_id. The literal id "random" serves a random
// joke instead; it shares this route because a static sibling of the wildcard
// would not register.
func (h *JokeHandler) Get(c *gin.Context) {
	if c.Param("joke_id") == "random" {
		h.Random(c)
		return
	}

	id, err := uuid.Parse(c.Param("joke_id"))
	if err != nil {
		response.BadRequest(c, "invalid joke id", middleware.GetRequestID(c))
		return
	}

	joke, err := h.jokeService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeFromDomain(joke))
}

// Random handles GET /jokes/random.
func (h *JokeHandler) Random(c *gin.Context) {
	joke, err := h.jokeService.Random(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeFromDomain(joke))
}
