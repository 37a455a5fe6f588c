package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/primelab-api/internal/models"
	"github.com/harentsoaR/primelab-api/internal/repository"
	"github.com/harentsoaR/primelab-api/internal/utils"
)

// ClaimsKey is where AuthMiddleware leaves the verified *utils.Claims.
const ClaimsKey = "decoded"

// Response bodies the web client matches on.
const (
	msgMissingAuth  = "Forbidden"
	msgInvalidToken = "forbidden access "
	msgNotAdmin     = "unauthorized access"
)

type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware requires a valid "Bearer <token>" Authorization header.
func AuthMiddleware(tokens TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgMissingAuth})
			return
		}

		var tokenString string
		if parts := strings.Fields(authHeader); len(parts) > 1 {
			tokenString = parts[1]
		}
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			logger.Debug("rejected token", zap.Error(err), zap.Bool("expired", errors.Is(err, utils.ErrExpiredToken)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// AdminMiddleware lets the request through only when the caller's user record
// has the admin role. It must be chained after AuthMiddleware.
func AdminMiddleware(users UserFinder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			logger.Error("AdminMiddleware ran without verified claims", zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgMissingAuth})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), claims.Email)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			user = nil
		case err != nil:
			logger.Error("admin lookup failed", zap.String("email", claims.Email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to verify role"})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgNotAdmin})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims AuthMiddleware stored on c.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}
