package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	authDelivery "taskmanager-backend/internal/auth/delivery"
	authUsecase "taskmanager-backend/internal/auth/usecase"
	taskDelivery "taskmanager-backend/internal/task/delivery"
	taskUsecasePkg "taskmanager-backend/internal/task/usecase"
	"taskmanager-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	config      *config.Config
	authHandler *authDelivery.AuthHandler
	taskHandler *taskDelivery.TaskHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config) *Handler {
	// Account deletion removes the user's tasks through the task usecase
	authUc.SetTaskCleaner(taskUc)

	return &Handler{
		authUsecase: authUc,
		config:      cfg,
		authHandler: authDelivery.NewAuthHandler(authUc),
		taskHandler: taskDelivery.NewTaskHandler(taskUc),
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(h.config.GinMode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = 2 << 20

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.taskHandler)
	return r
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    h.config.Addr(),
		Handler: h.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("[Server] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
