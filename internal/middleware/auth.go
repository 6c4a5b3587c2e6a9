package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

const sessionKey = "session"

// SessionCookie is where page logins store the token; API clients send it as
// a Bearer header instead.
const SessionCookie = "gcg_session"

// Authenticate extracts the caller's session from the Authorization header or
// the session cookie and stores it in the request context. It never aborts;
// the access middlewares decide what an absent session means per route.
func Authenticate(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				raw = cookie
			}
		}
		if raw != "" {
			if sess, err := tokens.Parse(raw); err == nil {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

// RequireAPI gates an API route. Missing sessions get 401, wrong roles 403.
// An empty role list only requires authentication.
func RequireAPI(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		sess := Session(c)
		decision := auth.ResolveAccess(sess, roles, c.Request.URL.Path)
		if decision.Allow {
			c.Next()
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
	}
}

// RequirePage gates a page route, rendering the same access decision as a
// 302: to the login page with a redirectTo, or to the caller's own landing
// page when the role does not match.
func RequirePage(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		decision := auth.ResolveAccess(Session(c), roles, c.Request.URL.Path)
		if decision.Allow {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, decision.RedirectPath)
		c.Abort()
	}
}

// Session returns the authenticated session, or nil for anonymous requests.
func Session(c *ginext.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*auth.Session)
	if !ok {
		return nil
	}
	return sess
}

func bearerToken(c *ginext.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
