package task

// CreateRequest is the new-task form. An empty status means todo.
type CreateRequest struct {
	OwnerID     string `json:"owner-id"`
	ProjectID   string `json:"project-id"`
	Title       string `json:"task-title"`
	Description string `json:"task-description"`
	Status      string `json:"task-status,omitempty"`
	EndDate     string `json:"task-end-date"`
}

// GetRequest addresses one task inside one of the owner's projects.
type GetRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id"`
	TaskID    string `json:"task-id"`
}

// ListRequest lists every task of the owner.
type ListRequest struct {
	OwnerID string `json:"owner-id"`
}

// ListByProjectRequest lists the tasks of one project.
type ListByProjectRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id"`
}

// ListByStatusRequest lists the tasks of one project in one status.
type ListByStatusRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id"`
	Status    string `json:"task-status"`
}

// ListAllRequest lists the tasks of every owner.
type ListAllRequest struct{}

// UpdateRequest is a partial task update. Status changes go through
// UpdateStatusRequest.
type UpdateRequest struct {
	OwnerID     string  `json:"owner-id"`
	ProjectID   string  `json:"project-id"`
	TaskID      string  `json:"task-id"`
	Title       *string `json:"task-title,omitempty"`
	Description *string `json:"task-description,omitempty"`
	EndDate     *string `json:"task-end-date,omitempty"`
}

// UpdateStatusRequest sets the status of one task.
type UpdateStatusRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id"`
	TaskID    string `json:"task-id"`
	Status    string `json:"task-status"`
}

// CountRequest counts the owner's tasks in one status. ProjectID is optional.
type CountRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id,omitempty"`
	Status    string `json:"task-status"`
}

// SummaryRequest asks for the per-status counts. ProjectID is optional.
type SummaryRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id,omitempty"`
}

// Summary holds the number of tasks per status.
type Summary struct {
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inprogress"`
	Finished   int64 `json:"finished"`
	Total      int64 `json:"total"`
}
