package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habtamu/memberdesk/internal/app/models/dto"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
	"github.com/habtamu/memberdesk/internal/pkg/auth"
	"github.com/habtamu/memberdesk/internal/pkg/logger"
	"github.com/habtamu/memberdesk/internal/session"
)

// AuthController handles sign-in and sign-out against the membership API.
type AuthController struct {
	sessions   *session.Manager
	cookies    *auth.CookieService
	cookieName string
	secure     bool
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions *session.Manager, cookies *auth.CookieService, cookieName string, secure bool) *AuthController {
	return &AuthController{
		sessions:   sessions,
		cookies:    cookies,
		cookieName: cookieName,
		secure:     secure,
	}
}

// ShowLogin renders the login screen. A denied query parameter carries
// the access-denied dialog a guard redirect asked for.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":  "Admin Login",
		"Denied": c.Query("denied"),
	})
}

// Login binds the credentials form, opens a fresh console session and
// signs in upstream through it. The API's session cookie lands in the
// session's jar; the browser only ever receives the console's own signed
// cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Title": "Admin Login",
			"Error": validationMessage(err),
		})
		return
	}

	state := ac.sessions.Create()

	var res dto.LoginResponse
	if err := state.Client.Post(c.Request.Context(), "/admin/login", req, &res); err != nil {
		ac.sessions.Delete(state.ID)
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Title": "Admin Login",
			"Error": apperrors.MessageOf(err),
		})
		return
	}

	token, err := ac.cookies.Issue(state.ID)
	if err != nil {
		ac.sessions.Delete(state.ID)
		logger.Error().Err(err).Msg("Failed to issue session cookie")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title": "Admin Login",
			"Error": "Could not start a session, please try again",
		})
		return
	}

	c.SetCookie(ac.cookieName, token, 0, "/", "", ac.secure, true)
	logger.Info().Str("studentid", res.Admin.StudentID).Msg("Admin signed in")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout signs out upstream, drops the console session and clears the
// cookie. Upstream failures are logged but never block the local
// sign-out.
func (ac *AuthController) Logout(c *gin.Context) {
	if raw, err := c.Cookie(ac.cookieName); err == nil {
		if id, err := ac.cookies.Verify(raw); err == nil {
			if state, err := ac.sessions.Get(id); err == nil {
				if err := state.Client.Get(c.Request.Context(), "/logout", nil); err != nil {
					logger.Warn().Err(err).Msg("Upstream logout failed")
				}
			}
			ac.sessions.Delete(id)
		}
	}

	c.SetCookie(ac.cookieName, "", -1, "/", "", ac.secure, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
