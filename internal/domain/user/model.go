package user

import "time"

// User represents a registered account.
type User struct {
	ID           uint      `json:"-"`
	PublicID     string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
