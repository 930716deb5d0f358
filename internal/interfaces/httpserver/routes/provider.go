package routes

import (
	"github.com/gin-gonic/gin"

	"todopro-server/internal/interfaces/httpserver/handlers"
	v1 "todopro-server/internal/interfaces/httpserver/routes/v1"
)

// Provider coordinates all route registrations.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider constructs the route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider),
	}
}

// Register attaches all protected routes to the gin engine.
func (p *Provider) Register(engine *gin.Engine, authMiddleware gin.HandlerFunc) {
	p.V1.Register(engine, authMiddleware)
}

// RegisterPublic attaches the routes that do not require credentials.
func (p *Provider) RegisterPublic(engine *gin.Engine) {
	p.V1.RegisterPublic(engine)
}
