package entities

import (
	"time"

	"todopro-server/internal/domain/conversation"
)

// Conversation represents the database schema for chat threads
type Conversation struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	UserID string `gorm:"type:varchar(64);index;not null"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// NewSchemaConversation maps the domain conversation to its database schema.
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	return &Conversation{
		ID:     c.ID,
		UserID: c.UserID,
	}
}

// EtoD converts the entity to its domain representation.
func (e *Conversation) EtoD() *conversation.Conversation {
	return &conversation.Conversation{
		ID:        e.ID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// Message represents the database schema for conversation turns
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	ConversationID uint   `gorm:"index:idx_message_conversation_created;not null"`
	UserID         string `gorm:"type:varchar(64);index;not null"`
	Role           string `gorm:"type:varchar(20);not null"`
	Content        string `gorm:"type:text;not null"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// NewSchemaMessage maps the domain message to its database schema.
func NewSchemaMessage(m *conversation.Message) *Message {
	return &Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Role:           string(m.Role),
		Content:        m.Content,
	}
}

// EtoD converts the entity to its domain representation.
func (e *Message) EtoD() *conversation.Message {
	return &conversation.Message{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		Role:           conversation.Role(e.Role),
		Content:        e.Content,
		CreatedAt:      e.CreatedAt,
	}
}
