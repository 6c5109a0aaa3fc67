// Package auth issues and verifies the bearer tokens that carry the owner
// identity of every request, and hashes account passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/felixkapfer/finalghecko/domain/user"
)

var (
	// ErrInvalidToken is returned for malformed, forged or wrongly typed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Config holds the signing settings.
type Config struct {
	SecretKey            string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	Issuer               string
}

// DefaultConfig returns settings suitable for local development only.
func DefaultConfig() Config {
	return Config{
		SecretKey:            "finalghecko-dev-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		Issuer:               "finalghecko",
	}
}

// Claims are the signed contents of a token.
type Claims struct {
	UserID string    `json:"user-id"`
	Email  string    `json:"email"`
	Kind   TokenKind `json:"token-kind"`
	jwt.RegisteredClaims
}

// Owner returns the identity carried by the token.
func (c *Claims) Owner() user.Claims {
	return user.Claims{UserID: c.UserID, Email: c.Email}
}

// Tokens signs and verifies HS256 tokens.
type Tokens struct {
	config Config
	now    func() time.Time
}

// NewTokens creates a token service for the given configuration.
func NewTokens(config Config) *Tokens {
	return &Tokens{config: config, now: time.Now}
}

// Issue signs a token of the given kind for the user.
func (t *Tokens) Issue(kind TokenKind, userID, email string) (string, error) {
	ttl := t.config.AccessTokenDuration
	if kind == RefreshToken {
		ttl = t.config.RefreshTokenDuration
	}

	now := t.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.config.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Pair issues a fresh access and refresh token for the user.
func (t *Tokens) Pair(userID, email string) (user.TokenPair, error) {
	access, err := t.Issue(AccessToken, userID, email)
	if err != nil {
		return user.TokenPair{}, err
	}
	refresh, err := t.Issue(RefreshToken, userID, email)
	if err != nil {
		return user.TokenPair{}, err
	}
	return user.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(t.config.AccessTokenDuration.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// Parse verifies the signature, the issuer and the expiry of a token.
func (t *Tokens) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(t.config.SecretKey), nil
	}, jwt.WithIssuer(t.config.Issuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify parses the token and requires it to be of the given kind.
func (t *Tokens) Verify(kind TokenKind, token string) (*Claims, error) {
	claims, err := t.Parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != kind {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
