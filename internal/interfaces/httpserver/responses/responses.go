package responses

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todopro-server/internal/domain/conversation"
	"todopro-server/internal/domain/task"
	"todopro-server/internal/domain/tool"
	"todopro-server/internal/domain/user"
	"todopro-server/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code          string `json:"code"` // UUID from PlatformError
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	ErrorInstance error  `json:"-"`
	RequestID     string `json:"request_id,omitempty"`
}

// HandleError handles domain errors and returns appropriate HTTP responses
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType())

		errResp := ErrorResponse{
			Code:          domainErr.GetUUID(),
			Error:         domainErr.Message,
			Message:       domainErr.Message,
			ErrorInstance: domainErr,
			RequestID:     domainErr.GetRequestID(),
		}

		reqCtx.AbortWithStatusJSON(statusCode, errResp)
		return
	}
	// Non-platform errors
	errResp := ErrorResponse{
		Error:         message,
		Message:       message,
		ErrorInstance: err,
	}
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, errResp)
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	ctx := reqCtx.Request.Context()
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, nil, uuid)

	statusCode := platformerrors.ErrorTypeToHTTPStatus(err.GetErrorType())

	errResp := ErrorResponse{
		Code:          err.GetUUID(),
		Error:         message,
		Message:       message,
		ErrorInstance: err,
		RequestID:     err.GetRequestID(),
	}

	reqCtx.AbortWithStatusJSON(statusCode, errResp)
}

// UserPayload is the account shape returned to clients.
type UserPayload struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FromDomainUser maps the domain user to DTO.
func FromDomainUser(u *user.User) UserPayload {
	return UserPayload{
		ID:        u.PublicID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// TokenPayload carries an issued access token.
type TokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TaskPayload is the task shape returned to clients.
type TaskPayload struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromDomainTask maps the domain task to DTO.
func FromDomainTask(t *task.Task) TaskPayload {
	return TaskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainTasks maps a task slice to DTOs.
func FromDomainTasks(tasks []task.Task) []TaskPayload {
	payloads := make([]TaskPayload, 0, len(tasks))
	for i := range tasks {
		payloads = append(payloads, FromDomainTask(&tasks[i]))
	}
	return payloads
}

// ChatPayload is the outcome of one chat turn.
type ChatPayload struct {
	ConversationID uint              `json:"conversation_id"`
	Response       string            `json:"response"`
	ToolCalls      []tool.Invocation `json:"tool_calls"`
}

// ConversationPayload is a conversation listing entry.
type ConversationPayload struct {
	ID           uint      `json:"id"`
	MessageCount int64     `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromDomainSummaries maps conversation summaries to DTOs.
func FromDomainSummaries(summaries []conversation.Summary) []ConversationPayload {
	payloads := make([]ConversationPayload, 0, len(summaries))
	for _, s := range summaries {
		payloads = append(payloads, ConversationPayload{
			ID:           s.ID,
			MessageCount: s.MessageCount,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return payloads
}

// ConversationDetailPayload is one thread with its full message history.
type ConversationDetailPayload struct {
	ConversationID uint             `json:"conversation_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Messages       []MessagePayload `json:"messages"`
}

// MessagePayload is a single conversation turn.
type MessagePayload struct {
	ID        uint      `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FromDomainMessages maps conversation messages to DTOs.
func FromDomainMessages(messages []conversation.Message) []MessagePayload {
	payloads := make([]MessagePayload, 0, len(messages))
	for _, m := range messages {
		payloads = append(payloads, MessagePayload{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return payloads
}
