package usecase

import (
	"fmt"
	"strings"

	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/dto"
	"taskmanager-backend/internal/task/repository"
	"taskmanager-backend/pkg/apperror"
	"taskmanager-backend/pkg/validation"
)

var errTaskNotFound = fmt.Errorf("task %w", apperror.ErrNotFound)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID string, req *dto.CreateTaskRequest) (*domain.Task, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Description: req.Description,
		OwnerID:     userID,
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(userID string, q domain.ListQuery) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindByOwner(userID, q)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (u *taskUsecase) GetTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByIDForOwner(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	if req.Description != nil {
		*req.Description = strings.TrimSpace(*req.Description)
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	task, err := u.GetTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.DeleteForOwner(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) DeleteByOwner(ownerID string) (int64, error) {
	return u.taskRepo.DeleteByOwner(ownerID)
}
