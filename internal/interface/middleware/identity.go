package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/pkg/helpers"
)

// Gin context keys set by Identity.
const (
	CtxUserIDKey = "userID"
	CtxEmailKey  = "userEmail"
	CtxRoleKey   = "userRole"
)

// Identity resolves the caller from the Authorization header. A missing,
// malformed or invalid bearer token demotes the request to anonymous instead
// of rejecting it; the authorization decision belongs to Authorize. Failures
// are logged so token problems stay diagnosable.
func Identity(tokens *helpers.TokenService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			logger.WithField("path", c.Request.URL.Path).Debug("malformed authorization header")
			c.Next()
			return
		}
		claims, err := tokens.Verify(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			logger.WithError(err).WithField("path", c.Request.URL.Path).Debug("token rejected")
			c.Next()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxEmailKey, claims.Email())
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated caller id, zero when anonymous.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(CtxUserIDKey)
	v, _ := id.(int64)
	return v
}

// Role returns the caller role; anonymous callers have the zero role.
func Role(c *gin.Context) entity.Role {
	r, _ := c.Get(CtxRoleKey)
	v, _ := r.(entity.Role)
	return v
}
