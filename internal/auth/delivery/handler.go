package delivery

import (
	"io"
	"net/http"

	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/usecase"
	"taskmanager-backend/pkg/apperror"
	"taskmanager-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the /users routes
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Signup creates an account and logs it in
// POST /users
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, validation.FromBindError(err))
		return
	}

	resp, err := h.authUsecase.Signup(&req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login issues a new session token
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.ErrInvalidCredentials)
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the token used for this request
// POST /users/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(CurrentUser(c), CurrentToken(c)); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// LogoutAll revokes every token of the user
// POST /users/logoutAll
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	if err := h.authUsecase.LogoutAll(CurrentUser(c)); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out of all sessions"})
}

// Me returns the authenticated user
// GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// UpdateMe applies a partial profile update
// PATCH /users/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		apperror.Respond(c, apperror.NewValidationError("invalid JSON body"))
		return
	}

	var req authdto.UpdateProfileRequest
	if err := validation.DecodeAllowed(body, authdto.UpdateProfileFields, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	user, err := h.authUsecase.UpdateProfile(CurrentUser(c), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe deletes the account and returns it
// DELETE /users/me
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	user := CurrentUser(c)
	if err := h.authUsecase.DeleteAccount(user); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadAvatar stores the multipart field "avatar" as the user's avatar
// POST /users/me/avatar
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		apperror.Respond(c, apperror.NewValidationError("please upload an avatar"))
		return
	}
	if fileHeader.Size > usecase.MaxAvatarBytes {
		apperror.Respond(c, apperror.NewValidationError("file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	defer file.Close()

	// One byte over the ceiling is enough for the usecase to reject it
	data, err := io.ReadAll(io.LimitReader(file, usecase.MaxAvatarBytes+1))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	if err := h.authUsecase.SetAvatar(CurrentUser(c), fileHeader.Filename, data); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "avatar uploaded"})
}

// DeleteAvatar clears the user's avatar
// DELETE /users/me/avatar
func (h *AuthHandler) DeleteAvatar(c *gin.Context) {
	if err := h.authUsecase.ClearAvatar(CurrentUser(c)); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "avatar removed"})
}

// GetAvatar serves a user's avatar without authentication
// GET /users/:id/avatar
func (h *AuthHandler) GetAvatar(c *gin.Context) {
	avatar, err := h.authUsecase.GetAvatar(c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", avatar)
}
