package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/handler/httperr"
	"buchungssystem/internal/pkg/errs"
	"buchungssystem/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxRoleKey = "session_role"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth verifies the session token and places the role in the request
// context. The token is the whole identity; there is no user behind it.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing session token"), "Ungültige Sitzung. Bitte erneut anmelden.", nil)
			return
		}

		role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("session validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Ungültige Sitzung. Bitte erneut anmelden.", nil)
			return
		}

		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return strings.TrimSpace(authHeader)
}

// GetRole returns the verified role placed in the context by RequireAuth.
func GetRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(user.Role)
	return role, ok
}
