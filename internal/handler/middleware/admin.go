package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"quality-detailing/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AdminHeader carries the shared admin secret on every admin request.
// There is no session or token exchange; each request re-presents the
// secret and a wrong value simply gets 401.
const AdminHeader = "X-Admin-Secret"

const ctxAdminKey = "is_admin"

type AdminMiddleware struct {
	cfg config.AdminConfig
}

func NewAdminMiddleware(cfg config.AdminConfig) *AdminMiddleware {
	return &AdminMiddleware{cfg: cfg}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(AdminHeader)
		if secret == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin secret required",
			})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(secret), []byte(m.cfg.Secret)) != 1 {
			slog.Warn("Admin secret mismatch", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin secret",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

// OptionalAdmin marks the request as admin when a valid secret is present,
// but never aborts. Public routes use it to widen read windows for admins.
func (m *AdminMiddleware) OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(AdminHeader)
		if secret != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(m.cfg.Secret)) == 1 {
			c.Set(ctxAdminKey, true)
		}
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(ctxAdminKey)
	if !exists {
		return false
	}
	flag, ok := isAdmin.(bool)
	return ok && flag
}
