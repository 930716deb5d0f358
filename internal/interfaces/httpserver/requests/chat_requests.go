package requests

// ChatRequest carries one user chat turn.
type ChatRequest struct {
	Message        string `json:"message" binding:"required,min=1,max=500"`
	ConversationID *uint  `json:"conversation_id"`
}

// ListConversationsQuery bounds a conversation listing.
type ListConversationsQuery struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
