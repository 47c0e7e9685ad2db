package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/auth"
	"landscout-backoffice/internal/models"
)

// AuthMiddleware validates the bearer token and stores the tenant identity
// on the request context. The secret is injected at construction so request
// handling never touches config loading.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(parts[1], jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("organization_id", claims.OrganizationID)
		c.Set("full_name", claims.FullName)
		c.Set("email", claims.Email)
		c.Set("features", claims.Features)
		c.Next()
	}
}

// TenantFromContext rebuilds the tenant identity stored by AuthMiddleware.
func TenantFromContext(c *gin.Context) models.Tenant {
	return models.Tenant{
		UserID:         c.GetString("user_id"),
		OrganizationID: c.GetString("organization_id"),
	}
}
