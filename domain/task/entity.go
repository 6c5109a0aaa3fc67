package task

import (
	"time"

	"github.com/felixkapfer/finalghecko/domain/project"
	"github.com/felixkapfer/finalghecko/domain/user"
)

// DateLayout is the wire format of task dates.
const DateLayout = "2006-01-02"

// Task is a unit of work inside a project. OwnerID and ProjectID are always
// matched together on lookup.
type Task struct {
	ID           string           `gorm:"primaryKey;type:varchar(36)"`
	OwnerID      string           `gorm:"index:idx_task_scope,priority:1;not null;type:varchar(36)"`
	Owner        *user.User       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	ProjectID    string           `gorm:"index:idx_task_scope,priority:2;not null;type:varchar(36)"`
	Project      *project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Title        string           `gorm:"not null;type:varchar(75)"`
	Description  string           `gorm:"not null"`
	Status       Status           `gorm:"index;not null;type:varchar(16);default:todo"`
	EndDate      time.Time        `gorm:"not null"`
	CreatedAt    time.Time
	LastModified time.Time
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}

// View is the public projection of a Task.
type View struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"task-owner"`
	ProjectID    string    `json:"assigned-to-project-id"`
	Title        string    `json:"task-title"`
	Description  string    `json:"task-description"`
	Status       Status    `json:"task-status"`
	EndDate      string    `json:"task-end-date"`
	DateOfIssue  time.Time `json:"date-of-issue"`
	LastModified time.Time `json:"last-modified"`
}

// View projects the entity into its public shape.
func (t *Task) View() View {
	return View{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		ProjectID:    t.ProjectID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		EndDate:      t.EndDate.UTC().Format(DateLayout),
		DateOfIssue:  t.CreatedAt,
		LastModified: t.LastModified,
	}
}

// Views projects a slice of entities.
func Views(tasks []Task) []View {
	out := make([]View, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].View()
	}
	return out
}
