package v1

import (
	"github.com/gin-gonic/gin"

	"todopro-server/internal/interfaces/httpserver/handlers"
)

func registerAuthRoutes(router gin.IRoutes, handler *handlers.AuthHandler) {
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/logout", handler.Logout)
}

func registerAccountRoutes(router gin.IRoutes, handler *handlers.AuthHandler) {
	router.GET("/auth/me", handler.Me)
}
