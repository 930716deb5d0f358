package v1

import (
	"github.com/gin-gonic/gin"

	"todopro-server/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", handler.Send)
	router.GET("/chat/conversations", handler.ListConversations)
	router.GET("/chat/conversations/:conversation_id", handler.GetConversation)
	router.DELETE("/chat/conversations/:conversation_id", handler.DeleteConversation)
}
