package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	Age       int       `json:"age" gorm:"not null;default:0"`
	Avatar    []byte    `json:"-"`
	Tokens    TokenList `json:"-" gorm:"type:text"` // Active session tokens, oldest first
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAvatar reports whether an avatar image is stored for the user.
func (u *User) HasAvatar() bool {
	return len(u.Avatar) > 0
}
