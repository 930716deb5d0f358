package v1

import (
	"github.com/gin-gonic/gin"

	"todopro-server/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// RegisterPublic attaches the v1 routes that accept anonymous callers.
func (r *Routes) RegisterPublic(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerAuthRoutes(group, r.handlers.Auth)
}

// Register attaches the authenticated v1 routes under the /v1 prefix.
func (r *Routes) Register(engine *gin.Engine, authMiddleware gin.HandlerFunc) {
	group := engine.Group("/v1")
	group.Use(authMiddleware)
	registerAccountRoutes(group, r.handlers.Auth)
	registerTaskRoutes(group, r.handlers.Task)
	registerChatRoutes(group, r.handlers.Chat)
}
