package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"relative path", "/admin/shifts", true},
		{"root", "/", true},
		{"with query", "/dashboard?tab=shifts", true},
		{"empty", "", false},
		{"no leading slash", "admin", false},
		{"protocol relative", "//evil.example.com", false},
		{"absolute url", "https://evil.example.com/x", false},
		{"backslash smuggle", "/\\evil.example.com", false},
		{"newline", "/admin\n.evil", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeRedirectPath(tt.path))
		})
	}
}

func TestResolveAccess_NilSessionRedirectsToLogin(t *testing.T) {
	d := ResolveAccess(nil, []domain.Role{domain.RoleAdmin}, "/admin/shifts")

	assert.False(t, d.Allow)
	assert.Equal(t, "/login?redirectTo=%2Fadmin%2Fshifts", d.RedirectPath)
}

func TestResolveAccess_NilSessionUnsafePathDropsRedirectTo(t *testing.T) {
	d := ResolveAccess(nil, []domain.Role{domain.RoleAdmin}, "//evil.example.com")

	assert.False(t, d.Allow)
	assert.Equal(t, LoginPath, d.RedirectPath)
}

func TestResolveAccess_WrongRoleRedirectsToOwnLanding(t *testing.T) {
	tests := []struct {
		role domain.Role
		want string
	}{
		{domain.RoleAdmin, "/admin"},
		{domain.RoleVenue, "/venue"},
		{domain.RoleUser, "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			other := domain.RoleAdmin
			if tt.role == domain.RoleAdmin {
				other = domain.RoleUser
			}

			d := ResolveAccess(&Session{UserID: "u1", Role: tt.role}, []domain.Role{other}, "/x")

			assert.False(t, d.Allow)
			assert.Equal(t, tt.want, d.RedirectPath)
		})
	}
}

func TestResolveAccess_MatchingRoleAllows(t *testing.T) {
	sess := &Session{UserID: "u1", Role: domain.RoleVenue}

	d := ResolveAccess(sess, []domain.Role{domain.RoleAdmin, domain.RoleVenue}, "/venue")

	assert.True(t, d.Allow)
	assert.Empty(t, d.RedirectPath)
}

func TestResolveAccess_NoRequiredRolesOnlyNeedsSession(t *testing.T) {
	d := ResolveAccess(&Session{UserID: "u1", Role: domain.RoleUser}, nil, "/api/notifications")

	assert.True(t, d.Allow)
}
