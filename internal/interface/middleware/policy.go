package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/pkg/response"
)

// Decision is the outcome of a policy check.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Policy decides route access from the request path, method and caller role.
// It is a pure function over its inputs so it can be tested without HTTP.
type Policy struct {
	// PublicPrefixes are reachable anonymously regardless of method.
	PublicPrefixes []string
	// PublicReadPrefixes are reachable anonymously for GET only.
	PublicReadPrefixes []string
	// ModeratorPrefixes require the moderator role.
	ModeratorPrefixes []string
}

// DefaultPolicy mirrors the route groups registered by the router.
func DefaultPolicy() Policy {
	return Policy{
		PublicPrefixes:     []string{"/api/auth/login", "/api/auth/registro", "/health"},
		PublicReadPrefixes: []string{"/api/juegos"},
		ModeratorPrefixes:  []string{"/api/moderacion"},
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Decide evaluates one request. authenticated is false for anonymous callers.
func (p Policy) Decide(path, method string, authenticated bool, role entity.Role) Decision {
	if hasPrefix(path, p.PublicPrefixes) {
		return Allow
	}
	if method == http.MethodGet && hasPrefix(path, p.PublicReadPrefixes) {
		return Allow
	}
	if !authenticated {
		return DenyUnauthenticated
	}
	if hasPrefix(path, p.ModeratorPrefixes) && !role.IsModerator() {
		return DenyForbidden
	}
	return Allow
}

// Authorize enforces the policy over the identity resolved by Identity.
func Authorize(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated := UserID(c) != 0
		switch p.Decide(c.Request.URL.Path, c.Request.Method, authenticated, Role(c)) {
		case DenyUnauthenticated:
			response.Error[any](c, http.StatusUnauthorized, "Debes iniciar sesión", nil)
			c.Abort()
		case DenyForbidden:
			response.Error[any](c, http.StatusForbidden, "Acceso restringido a moderadores", nil)
			c.Abort()
		default:
			c.Next()
		}
	}
}
