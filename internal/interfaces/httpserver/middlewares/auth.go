package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todopro-server/internal/infrastructure/auth"
	"todopro-server/internal/interfaces/httpserver/responses"
	"todopro-server/internal/utils/platformerrors"
)

const (
	userIDContextKey    = "user_id"
	userEmailContextKey = "user_email"
)

// Identity is the authenticated caller extracted from the bearer token.
type Identity struct {
	UserID string
	Email  string
}

// AuthMiddleware validates bearer tokens issued by the token service.
// A request without bearer credentials is rejected as forbidden; a request
// whose token fails verification is rejected as unauthorized.
func AuthMiddleware(tokens *auth.TokenService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("request without credentials")
			responses.HandleNewError(c, platformerrors.ErrorTypeForbidden,
				"Not authenticated", "9c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e70")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
				"Could not validate credentials", "0d4e5f6a-7b8c-4d9e-8f1a-2b3c4d5e6f70")
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(userEmailContextKey, claims.Email)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated caller, if any.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	userID := c.GetString(userIDContextKey)
	if userID == "" {
		return Identity{}, false
	}
	return Identity{
		UserID: userID,
		Email:  c.GetString(userEmailContextKey),
	}, true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
