package dto

// TaskRequest creates or updates a task.
// @Description Request body for creating or updating a task
type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" validate:"required"` // RFC 3339 or YYYY-MM-DD
}

// TaskResponse is one task in API responses.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
}

// TasksResponse wraps the user's tasks.
type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// SingleTaskResponse wraps one task.
type SingleTaskResponse struct {
	Task TaskResponse `json:"task"`
}
