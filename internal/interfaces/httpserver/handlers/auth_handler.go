package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todopro-server/internal/domain/user"
	"todopro-server/internal/interfaces/httpserver/middlewares"
	"todopro-server/internal/interfaces/httpserver/requests"
	"todopro-server/internal/interfaces/httpserver/responses"
	"todopro-server/internal/utils/platformerrors"
)

// AuthHandler exposes HTTP entrypoints for registration and login.
type AuthHandler struct {
	service user.Service
	log     zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service user.Service, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req requests.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid registration payload", "2e6f7a8b-9c0d-4e1f-8a2b-3c4d5e6f7a80")
		return
	}

	account, err := h.service.Register(c.Request.Context(), user.RegisterParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to register")
		return
	}

	c.JSON(http.StatusCreated, responses.FromDomainUser(account))
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid login payload", "3f7a8b9c-0d1e-4f2a-9b3c-4d5e6f7a8b90")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.HandleError(c, err, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, responses.TokenPayload{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "4a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9ca0")
		return
	}

	account, err := h.service.GetByPublicID(c.Request.Context(), identity.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load account")
		return
	}

	c.JSON(http.StatusOK, responses.FromDomainUser(account))
}

// Logout handles POST /v1/auth/logout. Tokens are stateless; the client
// discards its copy and the token expires on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
