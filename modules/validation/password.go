package validation

import (
	"fmt"
	"strings"
)

// PasswordPolicy selects which rule PasswordRegulationsViolated enforces.
// Only one policy is active per process.
type PasswordPolicy int

const (
	// PolicyBannedLiteral rejects passwords containing "admin".
	PolicyBannedLiteral PasswordPolicy = iota
	// PolicyIdentity rejects passwords containing the user's first name,
	// last name, e-mail address or e-mail local part.
	PolicyIdentity
)

const bannedLiteral = "admin"

func (p PasswordPolicy) String() string {
	switch p {
	case PolicyBannedLiteral:
		return "banned-literal"
	case PolicyIdentity:
		return "identity"
	default:
		return fmt.Sprintf("password-policy(%d)", int(p))
	}
}

// PasswordRegulationsViolated reports whether pwd breaks the policy. The
// comparison is case-insensitive.
func PasswordRegulationsViolated(policy PasswordPolicy, pwd, firstname, lastname, email string) bool {
	lower := strings.ToLower(pwd)
	if policy != PolicyIdentity {
		return strings.Contains(lower, bannedLiteral)
	}

	local, _, _ := strings.Cut(email, "@")
	for _, part := range lowerNonEmpty(firstname, lastname, email, local) {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
