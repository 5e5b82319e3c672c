package api

import (
	"net/http"

	"taskmanager-backend/internal/auth/delivery"
	authUsecase "taskmanager-backend/internal/auth/usecase"
	taskDelivery "taskmanager-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, taskHandler *taskDelivery.TaskHandler) {
	auth := delivery.AuthMiddleware(authUsecase)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// User routes
	users := r.Group("/users")
	{
		users.POST("", authHandler.Signup)
		users.POST("/login", authHandler.Login)
		users.GET("/:id/avatar", authHandler.GetAvatar)

		users.POST("/logout", auth, authHandler.Logout)
		users.POST("/logoutAll", auth, authHandler.LogoutAll)
		users.GET("/me", auth, authHandler.Me)
		users.PATCH("/me", auth, authHandler.UpdateMe)
		users.DELETE("/me", auth, authHandler.DeleteMe)
		users.POST("/me/avatar", auth, authHandler.UploadAvatar)
		users.DELETE("/me/avatar", auth, authHandler.DeleteAvatar)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(auth)
	{
		tasks.GET("", taskHandler.GetTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
