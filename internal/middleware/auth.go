package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SpinCityEvents/gig-manager/internal/audit"
	"github.com/SpinCityEvents/gig-manager/internal/cache"
	"github.com/SpinCityEvents/gig-manager/internal/config"
)

const (
	ContextUserID      = "userID"
	ContextUserRole    = "userRole"
	ContextPersonnelID = "personnelID"
	ContextTokenID     = "tokenID"
)

func AuthMiddleware(cfg *config.Config, c2 *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		jti, _ := claims["jti"].(string)

		userID, err := uuid.Parse(sub)
		if err != nil || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		if jti != "" && c2 != nil && c2.IsTokenRevoked(c.Request.Context(), jti) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Set(ContextTokenID, jti)

		if pid, ok := claims["personnelId"].(string); ok && pid != "" {
			if personnelID, err := uuid.Parse(pid); err == nil {
				c.Set(ContextPersonnelID, personnelID)
			}
		}

		// Attribute every DB write in this request to the session user.
		c.Request = c.Request.WithContext(
			audit.WithActor(c.Request.Context(), userID.String()),
		)

		c.Next()
	}
}
