package middleware

import (
	"net/http"
	"strings"

	"bauportal/internal/domain"
	jwtsvc "bauportal/internal/pkg/jwt"
	"bauportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and places user_id, role and
// tenant_id into the request context. Tokens without a tenant claim fall
// back to the default tenant scope.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization-Header fehlt")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Ungültiger Authorization-Header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Leeres Token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Ungültiges Token")
			c.Abort()
			return
		}

		tenantID := claims.TenantID
		if tenantID == "" {
			tenantID = domain.DefaultTenantID
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("tenant_id", tenantID)

		c.Next()
	}
}

// TenantID reads the resolved tenant scope from the request context.
func TenantID(c *gin.Context) string {
	if v := c.GetString("tenant_id"); v != "" {
		return v
	}
	return domain.DefaultTenantID
}
