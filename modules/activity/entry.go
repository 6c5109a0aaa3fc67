package activity

import (
	"time"

	"github.com/felixkapfer/finalghecko/domain/user"
)

// Kinds of activity entries.
const (
	KindUserRegistered    = "user-registered"
	KindProjectCreated    = "project-created"
	KindProjectDeleted    = "project-deleted"
	KindTaskCreated       = "task-created"
	KindTaskStatusChanged = "task-status-changed"
	KindTaskDeleted       = "task-deleted"
)

// Entry records one thing that happened to an owner's data.
type Entry struct {
	ID         string     `gorm:"primaryKey;type:varchar(36)"`
	OwnerID    string     `gorm:"index:idx_activity_owner,priority:1;not null;type:varchar(36)"`
	Owner      *user.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Kind       string     `gorm:"not null;type:varchar(32)"`
	SubjectID  string     `gorm:"not null;type:varchar(36)"`
	Message    string     `gorm:"not null"`
	OccurredAt time.Time  `gorm:"index:idx_activity_owner,priority:2;not null"`
}

// TableName returns the table name for the Entry entity.
func (Entry) TableName() string {
	return "activity_entries"
}

// View is the public projection of an Entry.
type View struct {
	ID         string    `json:"id"`
	Kind       string    `json:"activity-kind"`
	SubjectID  string    `json:"subject-id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred-at"`
}

func (e *Entry) View() View {
	return View{ID: e.ID, Kind: e.Kind, SubjectID: e.SubjectID, Message: e.Message, OccurredAt: e.OccurredAt}
}

// Views projects a slice of entries.
func Views(entries []Entry) []View {
	out := make([]View, len(entries))
	for i := range entries {
		out[i] = entries[i].View()
	}
	return out
}
