package apperror

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes the JSON error response that matches err and aborts the
// handler chain.
func Respond(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		body := gin.H{"error": vErr.Message}
		if len(vErr.Fields) > 0 {
			body["fields"] = vErr.Fields
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
	case errors.Is(err, ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrInvalidCredentials.Error()})
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthorized.Error()})
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
