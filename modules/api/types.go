package api

// ErrorResponse is returned when a request fails before reaching a module.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// StatusRequest is the body of PUT /projects/:projectId/tasks/:id/status.
type StatusRequest struct {
	Status string `json:"task-status"`
}
