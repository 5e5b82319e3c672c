package delivery

import (
	"net/http"

	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/dto"
	"taskmanager-backend/internal/task/usecase"
	"taskmanager-backend/pkg/apperror"
	"taskmanager-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests.
// All routes sit behind the auth middleware, which sets "userID".
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTask creates a task for the authenticated user
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, validation.FromBindError(err))
		return
	}

	task, err := h.taskUsecase.CreateTask(c.GetString("userID"), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns the authenticated user's tasks
// GET /tasks?completed=true&sortBy=createdAt_desc&limit=10&skip=20
func (h *TaskHandler) GetTasks(c *gin.Context) {
	q := domain.ParseListQuery(c.Request.URL.Query())

	tasks, err := h.taskUsecase.ListTasks(c.GetString("userID"), q)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTask(c.GetString("userID"), c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update
// PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		apperror.Respond(c, apperror.NewValidationError("invalid JSON body"))
		return
	}

	var req dto.UpdateTaskRequest
	if err := validation.DecodeAllowed(body, dto.UpdateTaskFields, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task and returns it
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, err := h.taskUsecase.DeleteTask(c.GetString("userID"), c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}
