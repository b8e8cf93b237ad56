package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/domain"
	"jokebox/src/core/usecase"
	"jokebox/src/infra/config"
)

// AuthHandler handles the login/register form action and logout.
type AuthHandler struct {
	authService *usecase.AuthService
	session     config.SessionConfig
}

func NewAuthHandler(authService *usecase.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, session: session}
}

// Login handles POST /login. The form carries loginType, username, password
// and an optional redirectTo. Rejections come back as 400 with the
// {fieldErrors, formError, fields} body; success sets the session cookie and
// redirects.
func (h *AuthHandler) Login(c *gin.Context) {
	form := usecase.LoginForm{
		LoginType:  c.PostForm("loginType"),
		Username:   c.PostForm("username"),
		Password:   c.PostForm("password"),
		RedirectTo: c.PostForm("redirectTo"),
	}

	result, err := h.authService.Submit(c.Request.Context(), form)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if result.Rejection != nil {
		response.FormRejected(c, result.Rejection)
		return
	}

	h.setSessionCookie(c, result.Session.Token)
	response.Redirect(c, result.RedirectTo)
}

// Logout handles POST /logout. It destroys the session, clears the cookie,
// and redirects. A request without a session cookie still redirects.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.session.CookieName)
	if err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			c.Error(err)
			response.FromDomainError(c, err, middleware.GetRequestID(c))
			return
		}
	}

	h.clearSessionCookie(c)
	response.Redirect(c, domain.DefaultRedirectTo)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, int(h.session.TTL.Seconds()), "/", "", h.session.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)
}
