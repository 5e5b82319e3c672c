package repository

import "taskmanager-backend/internal/task/domain"

// TaskRepository defines the interface for task data access.
// Every lookup is scoped to an owner; a task owned by someone else is
// indistinguishable from a missing one.
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByIDForOwner returns nil, nil when the task is missing or not owned by ownerID
	FindByIDForOwner(id, ownerID string) (*domain.Task, error)

	// FindByOwner lists the owner's tasks using the filter, order and page in q
	FindByOwner(ownerID string, q domain.ListQuery) ([]*domain.Task, error)

	// Update saves description and completed; the owner is never written
	Update(task *domain.Task) error

	// DeleteForOwner deletes and returns the task, or nil, nil when not found
	DeleteForOwner(id, ownerID string) (*domain.Task, error)

	// DeleteByOwner removes all tasks of an owner and reports how many were removed
	DeleteByOwner(ownerID string) (int64, error)
}
