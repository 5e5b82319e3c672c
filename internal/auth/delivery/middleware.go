package delivery

import (
	"strings"

	authdomain "taskmanager-backend/internal/auth/domain"
	"taskmanager-backend/internal/auth/usecase"
	"taskmanager-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	ContextUser   = "user"
	ContextUserID = "userID"
	ContextToken  = "token"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apperror.Respond(c, apperror.ErrUnauthorized)
			return
		}

		user, err := authUsecase.Authenticate(token)
		if err != nil {
			apperror.Respond(c, err)
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextToken, token)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CurrentUser returns the user attached by AuthMiddleware
func CurrentUser(c *gin.Context) *authdomain.User {
	user, _ := c.MustGet(ContextUser).(*authdomain.User)
	return user
}

// CurrentToken returns the bearer token of the current request
func CurrentToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}
