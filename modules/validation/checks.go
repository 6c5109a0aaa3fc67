// Package validation provides the field predicates and the per-field rule
// sequencing used by every endpoint before a repository is called.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted date input format.
const DateLayout = "2006-01-02"

// SpecialChars is the set accepted by ContainsSpecialChar.
const SpecialChars = "!@#$%^&*()"

var emailPattern = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+@\w+\.\w{2,3}$`)

var validate = validator.New()

// check runs a single validator tag against s.
func check(s, tag string) bool {
	return validate.Var(s, tag) == nil
}

// Checker is the set of predicates the rules are built from. Every method is
// pure and safe for concurrent use.
type Checker interface {
	IsEmpty(s string) bool
	MinLength(s string, n int) bool
	MaxLength(s string, n int) bool
	IsAlpha(s string) bool
	IsAlphaWithSpaces(s string) bool
	IsEmail(s string) bool
	ContainsUpper(s string) bool
	ContainsLower(s string) bool
	ContainsDigit(s string) bool
	ContainsSpecialChar(s string) bool
	IsDate(s string) bool
	OneOf(s string, allowed ...string) bool
}

// Predicates is the default Checker.
type Predicates struct{}

var _ Checker = Predicates{}

// IsEmpty reports whether s is blank after trimming.
func (Predicates) IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MinLength reports whether s has at least n characters. s is not trimmed.
func (Predicates) MinLength(s string, n int) bool {
	return check(s, fmt.Sprintf("min=%d", n))
}

// MaxLength reports whether s has at most n characters. s is not trimmed.
func (Predicates) MaxLength(s string, n int) bool {
	return check(s, fmt.Sprintf("max=%d", n))
}

// IsAlpha accepts any Unicode letter, so it is not backed by the ASCII-only
// alpha tag.
func (Predicates) IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func (Predicates) IsAlphaWithSpaces(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func (Predicates) IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func (Predicates) ContainsUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (Predicates) ContainsLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (Predicates) ContainsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (Predicates) ContainsSpecialChar(s string) bool {
	return strings.ContainsAny(s, SpecialChars)
}

// IsDate reports whether s is a calendar date in YYYY-MM-DD form.
func (Predicates) IsDate(s string) bool {
	return check(s, "datetime="+DateLayout)
}

// OneOf reports whether s equals one of allowed. An empty list accepts nothing.
func (Predicates) OneOf(s string, allowed ...string) bool {
	if len(allowed) == 0 {
		return false
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	return check(s, "oneof="+strings.Join(quoted, " "))
}

// ParseDate parses a value already accepted by IsDate.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
