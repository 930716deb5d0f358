package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todopro-server/internal/domain/chat"
	"todopro-server/internal/domain/conversation"
	"todopro-server/internal/domain/tool"
	"todopro-server/internal/interfaces/httpserver/handlers"
	"todopro-server/internal/utils/platformerrors"
)

// MockChatService is a func-field mock of chat.Service.
type MockChatService struct {
	SendFunc               func(ctx context.Context, userID string, params chat.SendParams) (*chat.SendResult, error)
	ListConversationsFunc  func(ctx context.Context, userID string, limit, offset int) ([]conversation.Summary, error)
	GetConversationFunc    func(ctx context.Context, userID string, id uint) (*conversation.Conversation, []conversation.Message, error)
	DeleteConversationFunc func(ctx context.Context, userID string, id uint) error
}

func (m *MockChatService) Send(ctx context.Context, userID string, params chat.SendParams) (*chat.SendResult, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockChatService) ListConversations(ctx context.Context, userID string, limit, offset int) ([]conversation.Summary, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *MockChatService) GetConversation(ctx context.Context, userID string, id uint) (*conversation.Conversation, []conversation.Message, error) {
	if m.GetConversationFunc != nil {
		return m.GetConversationFunc(ctx, userID, id)
	}
	return nil, nil, nil
}

func (m *MockChatService) DeleteConversation(ctx context.Context, userID string, id uint) error {
	if m.DeleteConversationFunc != nil {
		return m.DeleteConversationFunc(ctx, userID, id)
	}
	return nil
}

func setupChatTestRouter(handler *handlers.ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("user_email", "a@b.com")
	})
	v1 := r.Group("/v1/chat")
	{
		v1.POST("", handler.Send)
		v1.GET("/conversations", handler.ListConversations)
		v1.GET("/conversations/:conversation_id", handler.GetConversation)
		v1.DELETE("/conversations/:conversation_id", handler.DeleteConversation)
	}
	return r
}

func TestChatHandler_Send(t *testing.T) {
	mockService := &MockChatService{
		SendFunc: func(ctx context.Context, userID string, params chat.SendParams) (*chat.SendResult, error) {
			return &chat.SendResult{
				ConversationID: 5,
				Response:       "I've created a new task 'Buy milk' for you.",
				ToolCalls: []tool.Invocation{{
					ToolName:  "add_task",
					Arguments: tool.AddTaskArgs{Title: "Buy milk"},
					Result:    tool.Result{"success": true, "task_id": uint(1), "title": "Buy milk"},
				}},
			}, nil
		},
	}
	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"message": "remind me to buy milk"})
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["conversation_id"] != float64(5) {
		t.Errorf("conversation_id = %v, want 5", response["conversation_id"])
	}
	calls, ok := response["tool_calls"].([]any)
	if !ok || len(calls) != 1 {
		t.Fatalf("tool_calls = %v, want one entry", response["tool_calls"])
	}
	first, _ := calls[0].(map[string]any)
	if first["tool_name"] != "add_task" {
		t.Errorf("tool_name = %v, want add_task", first["tool_name"])
	}
}

func TestChatHandler_Send_EmptyToolCallsRendersArray(t *testing.T) {
	mockService := &MockChatService{
		SendFunc: func(ctx context.Context, userID string, params chat.SendParams) (*chat.SendResult, error) {
			return &chat.SendResult{ConversationID: 1, Response: "Hello"}, nil
		},
	}
	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"message": "hi"})
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	calls, ok := response["tool_calls"].([]any)
	if !ok {
		t.Fatalf("tool_calls = %v, want an empty array, not null", response["tool_calls"])
	}
	if len(calls) != 0 {
		t.Errorf("tool_calls = %v, want empty", calls)
	}
}

func TestChatHandler_Send_UpstreamUnavailable(t *testing.T) {
	mockService := &MockChatService{
		SendFunc: func(ctx context.Context, userID string, params chat.SendParams) (*chat.SendResult, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeExternal, "AI service is currently unavailable", nil, "test-external")
		},
	}
	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"message": "hi"})
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestChatHandler_Send_RejectsLongMessage(t *testing.T) {
	handler := handlers.NewChatHandler(&MockChatService{}, zerolog.Nop())
	router := setupChatTestRouter(handler)

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	body, _ := json.Marshal(map[string]string{"message": string(long)})
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatHandler_GetConversation(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	mockService := &MockChatService{
		GetConversationFunc: func(ctx context.Context, userID string, id uint) (*conversation.Conversation, []conversation.Message, error) {
			conv := &conversation.Conversation{ID: id, UserID: userID, CreatedAt: created, UpdatedAt: updated}
			return conv, []conversation.Message{
				{ID: 1, ConversationID: id, Role: conversation.RoleUser, Content: "hi"},
				{ID: 2, ConversationID: id, Role: conversation.RoleAssistant, Content: "hello"},
			}, nil
		},
	}
	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/chat/conversations/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["conversation_id"] != float64(5) {
		t.Errorf("conversation_id = %v, want 5", response["conversation_id"])
	}
	messages, ok := response["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %v, want both turns", response["messages"])
	}
	if response["created_at"] != "2025-06-01T12:00:00Z" {
		t.Errorf("created_at = %v, want the thread's creation time", response["created_at"])
	}
	if response["updated_at"] != "2025-06-01T13:00:00Z" {
		t.Errorf("updated_at = %v, want the thread's last update", response["updated_at"])
	}
}

func TestChatHandler_DeleteConversation(t *testing.T) {
	deleted := false
	mockService := &MockChatService{
		DeleteConversationFunc: func(ctx context.Context, userID string, id uint) error {
			deleted = true
			return nil
		},
	}
	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	req, _ := http.NewRequest("DELETE", "/v1/chat/conversations/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if !deleted {
		t.Error("DeleteConversation should reach the service")
	}
}
