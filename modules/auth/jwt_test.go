package auth

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		SecretKey:            "test-secret-key",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		Issuer:               "test-issuer",
	}
}

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens(testConfig())

	tests := []struct {
		name string
		kind TokenKind
	}{
		{"access", AccessToken},
		{"refresh", RefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue(tt.kind, "user-123", "ada@example.com")
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}

			claims, err := tokens.Verify(tt.kind, token)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if claims.UserID != "user-123" {
				t.Errorf("claims.UserID = %v, want user-123", claims.UserID)
			}
			if claims.Email != "ada@example.com" {
				t.Errorf("claims.Email = %v, want ada@example.com", claims.Email)
			}
			if claims.Kind != tt.kind {
				t.Errorf("claims.Kind = %v, want %v", claims.Kind, tt.kind)
			}
			if got := claims.Owner(); got.UserID != "user-123" || got.Email != "ada@example.com" {
				t.Errorf("claims.Owner() = %+v", got)
			}
		})
	}
}

func TestTokens_KindMismatch(t *testing.T) {
	tokens := NewTokens(testConfig())

	access, err := tokens.Issue(AccessToken, "user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := tokens.Verify(RefreshToken, access); err != ErrInvalidToken {
		t.Errorf("Verify(refresh, access token) error = %v, want ErrInvalidToken", err)
	}

	refresh, err := tokens.Issue(RefreshToken, "user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := tokens.Verify(AccessToken, refresh); err != ErrInvalidToken {
		t.Errorf("Verify(access, refresh token) error = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_Pair(t *testing.T) {
	tokens := NewTokens(testConfig())

	pair, err := tokens.Pair("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	if pair.TokenType != "Bearer" {
		t.Errorf("TokenType = %v, want Bearer", pair.TokenType)
	}
	if pair.ExpiresIn != 15*60 {
		t.Errorf("ExpiresIn = %v, want %v", pair.ExpiresIn, 15*60)
	}
	if _, err := tokens.Verify(AccessToken, pair.AccessToken); err != nil {
		t.Errorf("access token rejected: %v", err)
	}
	if _, err := tokens.Verify(RefreshToken, pair.RefreshToken); err != nil {
		t.Errorf("refresh token rejected: %v", err)
	}
}

func TestTokens_InvalidToken(t *testing.T) {
	tokens := NewTokens(testConfig())

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"random string", "not.a.valid.token"},
		{"malformed jwt", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tokens.Parse(tt.token); err != ErrInvalidToken {
				t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokens_WrongSecretOrIssuer(t *testing.T) {
	token, err := NewTokens(testConfig()).Issue(AccessToken, "user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherSecret := testConfig()
	otherSecret.SecretKey = "another-secret"
	if _, err := NewTokens(otherSecret).Parse(token); err == nil {
		t.Error("Parse() should fail with a different secret key")
	}

	otherIssuer := testConfig()
	otherIssuer.Issuer = "someone-else"
	if _, err := NewTokens(otherIssuer).Parse(token); err == nil {
		t.Error("Parse() should fail with a different issuer")
	}
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens(testConfig())
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := tokens.Issue(AccessToken, "user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tokens.now = time.Now
	if _, err := tokens.Parse(token); err != ErrExpiredToken {
		t.Errorf("Parse() error = %v, want ErrExpiredToken", err)
	}
}
