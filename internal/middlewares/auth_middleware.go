package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/utils"
)

func Authenticate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing Authorization header"})
		return
	}

	// Expected format: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization format"})
		return
	}

	claims, err := utils.VerifyJWT(parts[1], utils.AccessTokenSecret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}

	c.Set("userId", claims.UserID)
	c.Set("role", claims.Role)

	c.Next()
}
