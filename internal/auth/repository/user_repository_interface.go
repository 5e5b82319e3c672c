package repository

import authdomain "taskmanager-backend/internal/auth/domain"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create inserts a new user and assigns its ID and timestamps
	Create(user *authdomain.User) error
	// FindByID returns nil, nil when no user has the given ID
	FindByID(id string) (*authdomain.User, error)
	// FindByEmail returns nil, nil when no user has the given email
	FindByEmail(email string) (*authdomain.User, error)
	// Update saves profile fields and the avatar; the token list is left untouched
	Update(user *authdomain.User) error
	// UpdateTokens saves only the user's session token list
	UpdateTokens(user *authdomain.User) error
	// Delete removes the user record
	Delete(id string) error
}
