package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

func TestPolicyDecide(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name          string
		path, method  string
		authenticated bool
		role          entity.Role
		want          Decision
	}{
		{"login is public", "/api/auth/login", http.MethodPost, false, "", Allow},
		{"register is public", "/api/auth/registro", http.MethodPost, false, "", Allow},
		{"health is public", "/health", http.MethodGet, false, "", Allow},
		{"catalog read is public", "/api/juegos", http.MethodGet, false, "", Allow},
		{"catalog item read is public", "/api/juegos/5", http.MethodGet, false, "", Allow},
		{"catalog write needs auth", "/api/juegos", http.MethodPost, false, "", DenyUnauthenticated},
		{"cart needs auth", "/api/carrito", http.MethodGet, false, "", DenyUnauthenticated},
		{"forum needs auth", "/api/publicaciones", http.MethodGet, false, "", DenyUnauthenticated},
		{"cart allowed when logged in", "/api/carrito", http.MethodGet, true, entity.RoleUser, Allow},
		{"moderation denied to users", "/api/moderacion/ordenes", http.MethodGet, true, entity.RoleUser, DenyForbidden},
		{"moderation allowed to moderators", "/api/moderacion/ordenes", http.MethodGet, true, entity.RoleModerator, Allow},
		{"moderation needs auth first", "/api/moderacion/ordenes", http.MethodGet, false, "", DenyUnauthenticated},
		{"prefix match is segment-aware", "/api/juegosfalso", http.MethodGet, false, "", DenyUnauthenticated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Decide(tc.path, tc.method, tc.authenticated, tc.role)
			assert.Equal(t, tc.want, got)
		})
	}
}
