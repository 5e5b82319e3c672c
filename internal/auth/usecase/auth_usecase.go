package usecase

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/repository"
	"taskmanager-backend/pkg/apperror"
	"taskmanager-backend/pkg/config"
	"taskmanager-backend/pkg/imaging"
	"taskmanager-backend/pkg/validation"

	"gorm.io/gorm"
)

// MaxAvatarBytes is the largest avatar upload accepted.
const MaxAvatarBytes = 1_000_000

var avatarExtensions = []string{".jpg", ".jpeg", ".png"}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	tokens      TokenService
	notifier    AccountNotifier
	taskCleaner TaskCleaner
	config      *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens TokenService, notifier AccountNotifier, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
		config:   cfg,
	}
}

func (u *authUsecase) SetTaskCleaner(cleaner TaskCleaner) {
	u.taskCleaner = cleaner
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdto.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Password = strings.TrimSpace(req.Password)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.FieldError("email", "unique")
	}

	hashedPassword, err := repository.HashPassword(req.Password, u.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if req.Age != nil {
		user.Age = *req.Age
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.FieldError("email", "unique")
		}
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	u.notifier.AccountCreated(user.Email, user.Name)

	return &authdto.AuthResponse{User: user, Token: token}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(strings.TrimSpace(req.Password), user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: user, Token: token}, nil
}

func (u *authUsecase) Logout(user *authdomain.User, token string) error {
	return u.tokens.Revoke(user.ID, token)
}

func (u *authUsecase) LogoutAll(user *authdomain.User) error {
	return u.tokens.RevokeAll(user.ID)
}

func (u *authUsecase) Authenticate(token string) (*authdomain.User, error) {
	userID, err := u.tokens.Verify(token)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// A logged-out token still verifies; the session list is authoritative.
	if user == nil || !user.Tokens.Contains(token) {
		return nil, apperror.ErrUnauthorized
	}

	return user, nil
}

func (u *authUsecase) UpdateProfile(user *authdomain.User, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	if req.Name != nil {
		*req.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		*req.Email = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		*req.Password = strings.TrimSpace(*req.Password)
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.FieldError("email", "unique")
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Password != nil {
		hashedPassword, err := repository.HashPassword(*req.Password, u.config.BcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := u.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.FieldError("email", "unique")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) DeleteAccount(user *authdomain.User) error {
	if err := u.userRepo.Delete(user.ID); err != nil {
		return err
	}

	if u.taskCleaner != nil {
		removed, err := u.taskCleaner.DeleteByOwner(user.ID)
		if err != nil {
			log.Printf("[Auth] Failed to remove tasks of deleted user %s: %v", user.ID, err)
		} else if removed > 0 {
			log.Printf("[Auth] Removed %d tasks of deleted user %s", removed, user.ID)
		}
	}

	u.notifier.AccountDeleted(user.Email, user.Name)
	return nil
}

func (u *authUsecase) SetAvatar(user *authdomain.User, filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isAllowedAvatarExt(ext) {
		return apperror.NewValidationError("please upload a jpg, jpeg or png image")
	}
	if len(data) > MaxAvatarBytes {
		return apperror.NewValidationError(fmt.Sprintf("file too large (max %d bytes)", MaxAvatarBytes))
	}

	avatar, err := imaging.NormalizeAvatar(data)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			return apperror.NewValidationError("file must be an image")
		}
		return err
	}

	user.Avatar = avatar
	return u.userRepo.Update(user)
}

func (u *authUsecase) ClearAvatar(user *authdomain.User) error {
	user.Avatar = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) GetAvatar(userID string) ([]byte, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasAvatar() {
		return nil, fmt.Errorf("avatar: %w", apperror.ErrNotFound)
	}
	return user.Avatar, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isAllowedAvatarExt(ext string) bool {
	for _, allowed := range avatarExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
