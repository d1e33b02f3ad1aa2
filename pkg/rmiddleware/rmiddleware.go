package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/internal/middleware"
	"github.com/DhavalSuthar-24/crickscore/pkg/token"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware lets the request through when the token role matches one of requiredRoles.
// It must run after middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := middleware.GetUserIDFromContext(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}
		role, err := middleware.GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: " + err.Error()})
			return
		}

		for _, required := range requiredRoles {
			if strings.EqualFold(role, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "Forbidden",
			"message":   "You don't have permission to access this resource",
			"required":  requiredRoles,
			"user_role": role,
		})
	}
}

// ScorerMiddleware allows scorers and admins.
func ScorerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(token.RoleScorer, token.RoleAdmin)
}

// WriteGuard returns the handlers that protect create/update routes. With auth disabled
// it returns nothing and the routes stay open.
func WriteGuard(cfg *config.Config) []gin.HandlerFunc {
	if !cfg.Auth.Enabled {
		return nil
	}
	return []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret),
		ScorerMiddleware(),
	}
}
