package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todopro-server/internal/domain/chat"
	"todopro-server/internal/domain/tool"
	"todopro-server/internal/infrastructure/metrics"
	"todopro-server/internal/interfaces/httpserver/middlewares"
	"todopro-server/internal/interfaces/httpserver/requests"
	"todopro-server/internal/interfaces/httpserver/responses"
	"todopro-server/internal/utils/platformerrors"
)

// ChatHandler exposes HTTP entrypoints for the chat assistant.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Send handles POST /v1/chat
func (h *ChatHandler) Send(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "4e8f9a0b-1c2d-4e3f-8a4b-5c6d7e8f9a00")
		return
	}

	var req requests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid chat payload", "5f9a0b1c-2d3e-4f4a-9b5c-6d7e8f9a0b10")
		return
	}

	result, err := h.service.Send(c.Request.Context(), identity.UserID, chat.SendParams{
		Message:        req.Message,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to process chat message")
		return
	}

	for _, inv := range result.ToolCalls {
		metrics.RecordToolCall(inv.ToolName, inv.Result.Success())
	}

	toolCalls := result.ToolCalls
	if toolCalls == nil {
		toolCalls = []tool.Invocation{}
	}

	c.JSON(http.StatusOK, responses.ChatPayload{
		ConversationID: result.ConversationID,
		Response:       result.Response,
		ToolCalls:      toolCalls,
	})
}

// ListConversations handles GET /v1/chat/conversations
func (h *ChatHandler) ListConversations(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "6a0b1c2d-3e4f-4a5b-8c6d-7e8f9a0b1c20")
		return
	}

	var query requests.ListConversationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid list query", "7b1c2d3e-4f5a-4b6c-9d7e-8f9a0b1c2d30")
		return
	}

	summaries, err := h.service.ListConversations(c.Request.Context(), identity.UserID, query.Limit, query.Offset)
	if err != nil {
		responses.HandleError(c, err, "failed to list conversations")
		return
	}

	c.JSON(http.StatusOK, responses.FromDomainSummaries(summaries))
}

// GetConversation handles GET /v1/chat/conversations/:conversation_id
func (h *ChatHandler) GetConversation(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "8c2d3e4f-5a6b-4c7d-8e8f-9a0b1c2d3e40")
		return
	}

	id, ok := conversationIDParam(c)
	if !ok {
		return
	}

	conv, messages, err := h.service.GetConversation(c.Request.Context(), identity.UserID, id)
	if err != nil {
		responses.HandleError(c, err, "failed to get conversation")
		return
	}

	c.JSON(http.StatusOK, responses.ConversationDetailPayload{
		ConversationID: conv.ID,
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
		Messages:       responses.FromDomainMessages(messages),
	})
}

// DeleteConversation handles DELETE /v1/chat/conversations/:conversation_id
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "9d3e4f5a-6b7c-4d8e-9f0a-0b1c2d3e4f50")
		return
	}

	id, ok := conversationIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteConversation(c.Request.Context(), identity.UserID, id); err != nil {
		responses.HandleError(c, err, "failed to delete conversation")
		return
	}

	c.Status(http.StatusNoContent)
}

func conversationIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("conversation_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"conversation id must be a positive integer", "0e4f5a6b-7c8d-4e9f-8a1b-1c2d3e4f5a60")
		return 0, false
	}
	return uint(id), true
}
