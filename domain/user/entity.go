package user

import (
	"time"
)

// DefaultImageFile is assigned to every new account.
const DefaultImageFile = "default.jpg"

// User represents a registered account.
type User struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	FirstName    string `gorm:"not null;type:varchar(75)"`
	LastName     string `gorm:"not null;type:varchar(75)"`
	Email        string `gorm:"uniqueIndex;not null;type:varchar(255)"`
	ImageFile    string `gorm:"not null;default:default.jpg"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// View is the public projection of a User. The password hash is never part of it.
type View struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstname"`
	LastName    string    `json:"lastname"`
	Email       string    `json:"email"`
	ImageFile   string    `json:"image-file"`
	DateOfIssue time.Time `json:"date-of-issue"`
}

// View projects the entity into its public shape.
func (u *User) View() View {
	return View{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		ImageFile:   u.ImageFile,
		DateOfIssue: u.CreatedAt,
	}
}

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access-token"`
	RefreshToken string `json:"refresh-token"`
	ExpiresIn    int64  `json:"expires-in"`
	TokenType    string `json:"token-type"`
}

// Claims identifies the authenticated owner of a request.
type Claims struct {
	UserID string `json:"user-id"`
	Email  string `json:"email"`
}
