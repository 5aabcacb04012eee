package middleware

import (
	"biotutor_backend/internal/config"
	"biotutor_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie the login handler sets.
const SessionCookie = "session_token"

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid session token and stores
// the parsed claims on the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, cfg) {
			return
		}
		c.Next()
	}
}

// Guard applies session validation only to the configured path prefixes.
// Unmatched paths pass through unchecked.
func Guard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		protected := false
		for _, prefix := range cfg.Session.ProtectedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				protected = true
				break
			}
		}

		if protected && !authenticate(c, cfg) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, cfg *config.Config) bool {
	tokenString := extractToken(c)
	if tokenString == "" {
		util.Unauthorized(c)
		c.Abort()
		return false
	}

	claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
	if err != nil {
		util.Unauthorized(c)
		c.Abort()
		return false
	}

	c.Set("user", claims)
	return true
}
