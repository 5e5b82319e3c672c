package usecase

import (
	"fmt"

	"taskmanager-backend/internal/auth/repository"
	"taskmanager-backend/pkg/apperror"
	"taskmanager-backend/pkg/token"
)

// tokenService implements TokenService on top of a JWT signer and the
// user's persisted session list.
type tokenService struct {
	signer   *token.Signer
	userRepo repository.UserRepository
}

// NewTokenService creates a TokenService that signs with signer
func NewTokenService(signer *token.Signer, userRepo repository.UserRepository) TokenService {
	return &tokenService{
		signer:   signer,
		userRepo: userRepo,
	}
}

func (s *tokenService) Issue(userID string) (string, error) {
	tok, err := s.signer.Sign(userID)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
	}

	user.Tokens = append(user.Tokens, tok)
	if err := s.userRepo.UpdateTokens(user); err != nil {
		return "", err
	}
	return tok, nil
}

func (s *tokenService) Verify(tok string) (string, error) {
	return s.signer.Parse(tok)
}

func (s *tokenService) Revoke(userID, tok string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
	}

	user.Tokens = user.Tokens.Remove(tok)
	return s.userRepo.UpdateTokens(user)
}

func (s *tokenService) RevokeAll(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
	}

	user.Tokens = nil
	return s.userRepo.UpdateTokens(user)
}
