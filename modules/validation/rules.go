package validation

import (
	"strings"

	"github.com/felixkapfer/finalghecko/modules/apperror"
)

// Rule checks a non-empty value. It returns the record to report and true when
// the value is rejected.
type Rule func(c Checker, target, value string) (apperror.Record, bool)

// Field is one field group: an emptiness check followed by an exclusive chain
// of rules. At most one record is produced per field.
type Field struct {
	Target       string
	Value        string
	EmptyMessage string
	Rules        []Rule
}

// Validate evaluates the field groups in order. Groups are independent: a
// failing group never prevents the next one from being checked.
func Validate(c Checker, fields ...Field) []apperror.Record {
	var records []apperror.Record
	for _, f := range fields {
		if rec, failed := f.check(c); failed {
			records = append(records, rec)
		}
	}
	return records
}

func (f Field) check(c Checker) (apperror.Record, bool) {
	if c.IsEmpty(f.Value) {
		return apperror.Empty(f.Target, f.EmptyMessage), true
	}
	for _, rule := range f.Rules {
		if rec, failed := rule(c, f.Target, f.Value); failed {
			return rec, true
		}
	}
	return apperror.Record{}, false
}

// Alpha accepts letters only.
func Alpha(label, expected string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.IsAlpha(value) {
			return apperror.Record{}, false
		}
		return apperror.WrongClass(target, label, expected), true
	}
}

// AlphaWithSpaces accepts letters and whitespace.
func AlphaWithSpaces(label, expected string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.IsAlphaWithSpaces(value) {
			return apperror.Record{}, false
		}
		return apperror.WrongClass(target, label, expected), true
	}
}

func MinLen(label string, n int) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.MinLength(value, n) {
			return apperror.Record{}, false
		}
		return apperror.TooShort(target, label, n), true
	}
}

func MaxLen(label string, n int) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.MaxLength(value, n) {
			return apperror.Record{}, false
		}
		return apperror.TooLong(target, label, n), true
	}
}

// MaxBytes caps the encoded length of value. bcrypt only accepts 72 bytes.
func MaxBytes(label string, n int) Rule {
	return func(_ Checker, target, value string) (apperror.Record, bool) {
		if len(value) <= n {
			return apperror.Record{}, false
		}
		return apperror.TooLong(target, label, n), true
	}
}

// Email checks the address shape.
func Email() Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.IsEmail(value) {
			return apperror.Record{}, false
		}
		return apperror.BadEmail(target), true
	}
}

func Upper(label string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.ContainsUpper(value) {
			return apperror.Record{}, false
		}
		return apperror.MissingClass(target, label, "one upper character"), true
	}
}

func Lower(label string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.ContainsLower(value) {
			return apperror.Record{}, false
		}
		return apperror.MissingClass(target, label, "one lower character"), true
	}
}

func Digit(label string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.ContainsDigit(value) {
			return apperror.Record{}, false
		}
		return apperror.MissingClass(target, label, "one number"), true
	}
}

func Special(label string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.ContainsSpecialChar(value) {
			return apperror.Record{}, false
		}
		return apperror.MissingClass(target, label, "one special character"), true
	}
}

// Date requires YYYY-MM-DD.
func Date(label string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.IsDate(value) {
			return apperror.Record{}, false
		}
		return apperror.BadFormat(target, label, "a date in the format YYYY-MM-DD"), true
	}
}

// OneOf accepts exactly one of the allowed literals. hint is shown to the user.
func OneOf(label, hint string, allowed ...string) Rule {
	return func(c Checker, target, value string) (apperror.Record, bool) {
		if c.OneOf(value, allowed...) {
			return apperror.Record{}, false
		}
		return apperror.WrongClass(target, label, hint), true
	}
}

// Password applies the configured password policy.
func Password(policy PasswordPolicy, firstname, lastname, email string) Rule {
	return func(_ Checker, target, value string) (apperror.Record, bool) {
		if !PasswordRegulationsViolated(policy, value, firstname, lastname, email) {
			return apperror.Record{}, false
		}
		return apperror.PasswordPolicy(target), true
	}
}

// Equals requires the value to match other, used for confirmation fields.
func Equals(other string) Rule {
	return func(_ Checker, target, value string) (apperror.Record, bool) {
		if value == other {
			return apperror.Record{}, false
		}
		return apperror.ConfirmationMismatch(target), true
	}
}

// Strong is the password complexity chain: length, upper, lower, digit, special.
func Strong(label string, min int) []Rule {
	return []Rule{MinLen(label, min), Upper(label), Lower(label), Digit(label), Special(label)}
}

// Join concatenates rule chains.
func Join(chains ...[]Rule) []Rule {
	var out []Rule
	for _, c := range chains {
		out = append(out, c...)
	}
	return out
}

func lowerNonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
