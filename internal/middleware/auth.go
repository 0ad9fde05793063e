package middleware

import (
	"net/http"
	"strings"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/auth"
	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Context keys set by RequireAuth
const (
	ContextKeyClaims = "claims"
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

type AuthMiddleware struct {
	jwtSecret string
	logger    *logrus.Logger
}

func NewAuthMiddleware(jwtSecret string, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// RequireAuth validates the bearer token and stores its claims in the
// request context. Authentication failures are reported generically.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.respondUnauthorized(c, "Missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.respondUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateJWT(parts[1], m.jwtSecret)
		if err != nil {
			m.logger.WithError(err).Debug("Token verification failed")
			m.respondUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

func (m *AuthMiddleware) respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   models.ErrCodeUnauthorized,
		Message: message,
	})
}

// ClaimsFromContext extracts validated claims set by RequireAuth
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
