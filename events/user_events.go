package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// UserRegisteredEvent is emitted after an account was created.
type UserRegisteredEvent struct {
	UserID       string    `json:"user-id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered-at"`
}

// UserRegisteredV1 is the typed event definition for registrations.
// Subject: events.user.v1.user-registered
var UserRegisteredV1 = helper.EventDefinition[UserRegisteredEvent](
	"user", "UserRegistered", "v1",
)
