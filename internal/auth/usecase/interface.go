package usecase

import (
	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
)

// AuthUsecase defines account and session operations
type AuthUsecase interface {
	Signup(req *authdto.SignupRequest) (*authdto.AuthResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)
	Logout(user *authdomain.User, token string) error
	LogoutAll(user *authdomain.User) error

	// Authenticate resolves a bearer token to its user. The token must verify
	// and still be in the user's session list.
	Authenticate(token string) (*authdomain.User, error)

	UpdateProfile(user *authdomain.User, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	DeleteAccount(user *authdomain.User) error

	SetAvatar(user *authdomain.User, filename string, data []byte) error
	ClearAvatar(user *authdomain.User) error
	GetAvatar(userID string) ([]byte, error)

	// SetTaskCleaner wires the collaborator that removes a deleted user's tasks
	SetTaskCleaner(cleaner TaskCleaner)
}

// TokenService issues, verifies and revokes session tokens
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
	Revoke(userID, token string) error
	RevokeAll(userID string) error
}

// AccountNotifier sends account emails. Implementations must not block.
type AccountNotifier interface {
	AccountCreated(email, name string)
	AccountDeleted(email, name string)
}

// TaskCleaner removes every task owned by a user
type TaskCleaner interface {
	DeleteByOwner(ownerID string) (int64, error)
}
