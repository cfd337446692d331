package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	usersvc "storefront/internal/service/user"
)

const userCtxKey = "authedUser"

func bearerToken(c *gin.Context) string {
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

// authRequired resolves the bearer token to a user and aborts with 401
// when it cannot.
func authRequired(users *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		u, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userCtxKey, *u)
		c.Next()
	}
}

// maybeAuthenticated resolves the bearer token when present but lets
// anonymous requests through.
func maybeAuthenticated(users *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if u, err := users.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(userCtxKey, *u)
			}
		}
		c.Next()
	}
}

// currentUser returns the authenticated user set by the middleware.
func currentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}
