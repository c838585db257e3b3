package middlewares

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/utils"
)

// Authenticate validates the bearer token and stores the user id on the
// context. Tokens revoked by logout are rejected via the redis blacklist.
func Authenticate(secret []byte, redisRepo *repositories.RedisRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		claims, err := utils.VerifyJWT(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		if claims.ID != "" {
			blacklisted, err := redisRepo.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Redis being down should not lock every user out.
				log.Printf("blacklist check failed: %v", err)
			} else if blacklisted {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has been revoked"})
				return
			}
		}

		c.Set("userId", claims.UserID)

		c.Next()
	}
}
