package v1

import (
	"github.com/gin-gonic/gin"

	"todopro-server/internal/interfaces/httpserver/handlers"
)

func registerTaskRoutes(router gin.IRoutes, handler *handlers.TaskHandler) {
	router.POST("/tasks", handler.Create)
	router.GET("/tasks", handler.List)
	router.GET("/tasks/:task_id", handler.Get)
	router.PUT("/tasks/:task_id", handler.Update)
	router.PATCH("/tasks/:task_id/toggle-complete", handler.ToggleComplete)
	router.DELETE("/tasks/:task_id", handler.Delete)
}
