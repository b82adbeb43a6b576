package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

// Context keys set by AuthGate
const (
	ContextClaims    = "claims"
	ContextUserEmail = "user_email"
)

const (
	msgForbiddenAccess    = "forbidden access"
	msgUnauthorizedAccess = "unauthorized access!!"
)

// AuthMiddleware verifies self-issued tokens and checks the stored role
type AuthMiddleware struct {
	tokens services.TokenService
	users  services.UserService
	logger utils.Logger
}

func NewAuthMiddleware(tokens services.TokenService, users services.UserService, logger utils.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, logger: logger}
}

// AuthGate requires a valid "Authorization: Bearer <token>" header
func (am *AuthMiddleware) AuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: msgForbiddenAccess})
			return
		}

		claims, err := am.tokens.Verify(token)
		if err != nil {
			utils.GetLogger(c, am.logger).Debug("Token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: msgForbiddenAccess})
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUserEmail, claims.Email())
		c.Next()
	}
}

// AdminGate must run after AuthGate. The role is read from the user store
// on every request so revocations apply immediately.
func (am *AuthMiddleware) AdminGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: msgUnauthorizedAccess})
			return
		}

		isAdmin, err := am.users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			utils.GetLogger(c, am.logger).Error("Admin lookup failed", "error", err, "email", email)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: msgUnauthorizedAccess})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
