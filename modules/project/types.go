package project

// CreateRequest is the new-project form. Dates are YYYY-MM-DD.
type CreateRequest struct {
	OwnerID     string `json:"owner-id"`
	Title       string `json:"project-title"`
	Description string `json:"project-description"`
	StartDate   string `json:"project-start-date"`
	EndDate     string `json:"project-end-date"`
}

// GetRequest addresses one project of the owner.
type GetRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id"`
}

// ListRequest lists the owner's projects.
type ListRequest struct {
	OwnerID string `json:"owner-id"`
}

// ListAllRequest lists the projects of every owner.
type ListAllRequest struct{}

// UpdateRequest is a partial project update. Absent fields are kept.
type UpdateRequest struct {
	OwnerID     string  `json:"owner-id"`
	ProjectID   string  `json:"project-id"`
	Title       *string `json:"project-title,omitempty"`
	Description *string `json:"project-description,omitempty"`
	StartDate   *string `json:"project-start-date,omitempty"`
	EndDate     *string `json:"project-end-date,omitempty"`
}

// DurationRequest asks for the date difference of a project.
type DurationRequest struct {
	OwnerID   string `json:"owner-id"`
	ProjectID string `json:"project-id"`
	Mode      string `json:"mode"`
}
