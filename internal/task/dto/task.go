package dto

type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
	Completed   *bool  `json:"completed"`
}

// UpdateTaskFields lists the JSON keys PATCH /tasks/:id accepts.
var UpdateTaskFields = []string{"description", "completed"}

type UpdateTaskRequest struct {
	Description *string `json:"description" validate:"omitnil,min=1"`
	Completed   *bool   `json:"completed"`
}
