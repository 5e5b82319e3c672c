package usecase

import (
	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/dto"
)

// TaskUsecase defines the interface for task business logic.
// Every operation is scoped to the calling user.
type TaskUsecase interface {
	// CreateTask creates a task owned by userID
	CreateTask(userID string, req *dto.CreateTaskRequest) (*domain.Task, error)

	// ListTasks returns the user's tasks; never nil
	ListTasks(userID string, q domain.ListQuery) ([]*domain.Task, error)

	// GetTask returns ErrNotFound for missing and foreign tasks alike
	GetTask(userID, taskID string) (*domain.Task, error)

	UpdateTask(userID, taskID string, req *dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(userID, taskID string) (*domain.Task, error)

	// DeleteByOwner removes every task of a user (account deletion)
	DeleteByOwner(ownerID string) (int64, error)
}
