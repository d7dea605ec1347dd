package middleware

import (
	"net/http"
	"strings"

	"sorveteria-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid Bearer token. There is a single
// authenticated principal; no roles beyond "authenticated" exist.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Cabeçalho Authorization obrigatório")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Formato do cabeçalho Authorization inválido")
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// CronMiddleware guards the maintenance endpoints with a shared secret so
// an external scheduler does not need the login flow. When the secret is
// unset the endpoints are open.
func CronMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") != "Bearer "+secret {
			abortUnauthorized(c, "Segredo do cron inválido")
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": msg},
	})
	c.Abort()
}
