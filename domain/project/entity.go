package project

import (
	"time"

	"github.com/felixkapfer/finalghecko/domain/user"
)

// DateLayout is the wire format of project dates.
const DateLayout = "2006-01-02"

// Project groups tasks of one owner.
type Project struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)"`
	OwnerID     string     `gorm:"index;not null;type:varchar(36)"`
	Owner       *user.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"not null;type:varchar(75)"`
	Description string     `gorm:"not null"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     time.Time  `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for the Project entity.
func (Project) TableName() string {
	return "projects"
}

// View is the public projection of a Project.
type View struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"project-owner"`
	Title       string    `json:"project-title"`
	Description string    `json:"project-description"`
	StartDate   string    `json:"project-start-date"`
	EndDate     string    `json:"project-end-date"`
	DateOfIssue time.Time `json:"date-of-issue"`
}

// View projects the entity into its public shape.
func (p *Project) View() View {
	return View{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		StartDate:   p.StartDate.UTC().Format(DateLayout),
		EndDate:     p.EndDate.UTC().Format(DateLayout),
		DateOfIssue: p.CreatedAt,
	}
}

// Views projects a slice of entities.
func Views(projects []Project) []View {
	out := make([]View, len(projects))
	for i := range projects {
		out[i] = projects[i].View()
	}
	return out
}
