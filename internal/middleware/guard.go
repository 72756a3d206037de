package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
	"github.com/habtamu/memberdesk/internal/pkg/auth"
	"github.com/habtamu/memberdesk/internal/session"
)

// Decision is the route guard's state: Pending until a check completes,
// then Allowed or Denied. Guarded handlers never run in Denied.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionAllowed
	DecisionDenied
)

// Decide maps a resolver result onto a guard decision. Pure transition
// function: the redirect happens as a reaction to its output, never in
// here.
func Decide(res session.Result) Decision {
	if res.Status == session.StatusAuthenticated {
		return DecisionAllowed
	}
	return DecisionDenied
}

// DecideSuperAdmin checks the cached identity projection. An absent
// identity (the primary guard has not populated it yet) denies.
func DecideSuperAdmin(id *models.Identity) Decision {
	if id != nil && id.IsSuperAdmin {
		return DecisionAllowed
	}
	return DecisionDenied
}

const sessionContextKey = "consoleSession"

// Guard gates navigation into the administrative area.
type Guard struct {
	sessions   *session.Manager
	cookies    *auth.CookieService
	cookieName string
}

// NewGuard creates a Guard.
func NewGuard(sessions *session.Manager, cookies *auth.CookieService, cookieName string) *Guard {
	return &Guard{sessions: sessions, cookies: cookies, cookieName: cookieName}
}

// StateFromContext returns the console session attached by RequireAuth.
func StateFromContext(c *gin.Context) *session.State {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(*session.State); ok {
			return s
		}
	}
	return nil
}

// lookup finds the console session named by the signed cookie.
func (g *Guard) lookup(c *gin.Context) (*session.State, error) {
	raw, err := c.Cookie(g.cookieName)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	id, err := g.cookies.Verify(raw)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return g.sessions.Get(id)
}

// RequireAuth is the primary guard. Every protected-route entry re-derives
// the authentication state from the API, never from console-local state.
// Allowed populates the identity projection on the session for navigation
// and the secondary guard; Denied redirects to the login screen without
// running the guarded handler.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := g.lookup(c)
		if err != nil {
			redirectToLogin(c, "")
			return
		}

		res := session.Resolve(c.Request.Context(), state.Client)
		switch Decide(res) {
		case DecisionAllowed:
			state.SetIdentity(res.Identity)
			c.Set(sessionContextKey, state)
			c.Next()
		default:
			// A failed check carries a message the login screen surfaces
			// as a dialog; a plain negative answer redirects silently.
			msg := ""
			if res.Err != nil {
				msg = apperrors.MessageOf(res.Err)
			}
			redirectToLogin(c, msg)
		}
	}
}

// RequireSuperAdmin is the secondary guard for the admin-management
// screen. It is synchronous: it reads the projection the primary guard
// cached and never talks to the API itself.
func (g *Guard) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := StateFromContext(c)
		var identity *models.Identity
		if state != nil {
			identity = state.Identity()
		}

		if DecideSuperAdmin(identity) != DecisionAllowed {
			redirectToLogin(c, "You are not authorized to view this page.")
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, message string) {
	target := "/admin/login"
	if message != "" {
		target += "?denied=" + url.QueryEscape(message)
	}
	c.Redirect(http.StatusSeeOther, target)
	c.Abort()
}
