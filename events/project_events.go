package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ProjectCreatedEvent is emitted when a project was stored.
type ProjectCreatedEvent struct {
	ProjectID string    `json:"project-id"`
	OwnerID   string    `json:"owner-id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created-at"`
}

// ProjectCreatedV1 is the typed event definition for project creation.
// Subject: events.project.v1.project-created
var ProjectCreatedV1 = helper.EventDefinition[ProjectCreatedEvent](
	"project", "ProjectCreated", "v1",
)

// ProjectDeletedEvent is emitted when a project and its tasks were removed.
type ProjectDeletedEvent struct {
	ProjectID string    `json:"project-id"`
	OwnerID   string    `json:"owner-id"`
	Title     string    `json:"title"`
	DeletedAt time.Time `json:"deleted-at"`
}

// ProjectDeletedV1 is the typed event definition for project deletion.
// Subject: events.project.v1.project-deleted
var ProjectDeletedV1 = helper.EventDefinition[ProjectDeletedEvent](
	"project", "ProjectDeleted", "v1",
)
