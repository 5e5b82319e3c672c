package domain

import "time"

// Task represents a to-do item owned by exactly one user
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"` // UUIDv7, sorts in insertion order
	Description string    `json:"description" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	OwnerID     string    `json:"owner" gorm:"column:owner_id;index;not null"` // Set at creation, never updated
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
