package entities

import (
	"time"

	"todopro-server/internal/domain/user"
)

// User represents the database schema for accounts
type User struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	Tasks         []Task         `gorm:"foreignKey:UserID;references:PublicID"`
	Conversations []Conversation `gorm:"foreignKey:UserID;references:PublicID"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// NewSchemaUser maps the domain user to its database schema.
func NewSchemaUser(u *user.User) *User {
	return &User{
		ID:           u.ID,
		PublicID:     u.PublicID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
	}
}

// EtoD converts the entity to its domain representation.
func (e *User) EtoD() *user.User {
	return &user.User{
		ID:           e.ID,
		PublicID:     e.PublicID,
		Email:        e.Email,
		Name:         e.Name,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
