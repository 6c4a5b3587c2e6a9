package auth

import (
	"net/url"
	"strings"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

// Decision is the outcome of an access check. Exactly one of Allow or
// RedirectPath is meaningful: when Allow is false, RedirectPath is where the
// caller should be sent.
type Decision struct {
	Allow        bool
	RedirectPath string
}

const LoginPath = "/login"

var landingPaths = map[domain.Role]string{
	domain.RoleAdmin: "/admin",
	domain.RoleVenue: "/venue",
	domain.RoleUser:  "/dashboard",
}

// LandingPath is the canonical page for a role.
func LandingPath(role domain.Role) string {
	if p, ok := landingPaths[role]; ok {
		return p
	}
	return LoginPath
}

// ResolveAccess is the single authorization policy. Every boundary
// (page middleware, API middleware) evaluates it and renders the decision in
// its own vocabulary (302 vs 401/403).
//
// A nil session redirects to the login page, carrying the requested path as
// redirectTo when it is a safe same-origin relative path. A session whose
// role is not in required redirects to that role's own landing page.
func ResolveAccess(sess *Session, required []domain.Role, requestedPath string) Decision {
	if sess == nil {
		target := LoginPath
		if SafeRedirectPath(requestedPath) {
			target = LoginPath + "?redirectTo=" + url.QueryEscape(requestedPath)
		}
		return Decision{RedirectPath: target}
	}

	if len(required) == 0 {
		return Decision{Allow: true}
	}
	for _, r := range required {
		if sess.Role == r {
			return Decision{Allow: true}
		}
	}

	return Decision{RedirectPath: LandingPath(sess.Role)}
}

// SafeRedirectPath accepts only same-origin relative paths. Protocol-relative
// ("//host"), absolute ("https://host") and backslash-smuggled targets are
// rejected to prevent open redirects.
func SafeRedirectPath(p string) bool {
	if p == "" || p[0] != '/' {
		return false
	}
	if strings.HasPrefix(p, "//") {
		return false
	}
	if strings.ContainsAny(p, "\\\r\n") {
		return false
	}
	u, err := url.Parse(p)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
