package user

import (
	domain "github.com/felixkapfer/finalghecko/domain/user"
)

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm-password"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the payload of a successful login.
type Session struct {
	User   domain.View      `json:"user"`
	Tokens domain.TokenPair `json:"tokens"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh-token"`
}

// RefreshResponse carries the new token pair, or the reason it was refused.
type RefreshResponse struct {
	Valid  bool              `json:"valid"`
	Tokens *domain.TokenPair `json:"tokens,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// ValidateTokenRequest carries an access token.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse reports the owner identity of a valid access token.
type ValidateTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user-id,omitempty"`
	Email  string `json:"email,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OwnerRequest addresses the authenticated account.
type OwnerRequest struct {
	OwnerID string `json:"owner-id"`
}

// UpdateRequest is a partial account update. Absent fields are kept.
type UpdateRequest struct {
	OwnerID   string  `json:"owner-id"`
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
}

// ListRequest lists every account.
type ListRequest struct{}
