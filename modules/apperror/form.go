package apperror

import "fmt"

// FormErrorKind identifies an input validation failure.
type FormErrorKind int

const (
	EmptyRequiredField FormErrorKind = iota + 1
	BelowMinimumLength
	AboveMaximumLength
	WrongCharacterClass
	MissingRequiredCharacterClass
	InvalidEmailShape
	PasswordPolicyViolation
	PasswordConfirmationMismatch
	InvalidFormat
)

var formEntries = map[FormErrorKind]entry{
	InvalidFormat:                 {code: "11-1", errorType: "Invalid-Type-Failure:"},
	WrongCharacterClass:           {code: "11-2", errorType: "Invalid-Type-Failure:"},
	MissingRequiredCharacterClass: {code: "11-3", errorType: "Missing-Required-Arguments-Failure:"},
	EmptyRequiredField:            {code: "12-1", errorType: "Missing-Data-Failure:"},
	BelowMinimumLength:            {code: "12-2", errorType: "Out-Of-Minimum-Length-Failure:"},
	AboveMaximumLength:            {code: "12-3", errorType: "Out-Of-Maximum-Length-Failure:"},
	InvalidEmailShape: {
		code:        "13-1",
		errorType:   "Invalid-Email-Failure:",
		description: "Incorrect E-Mail Format! - Please enter the correct format!",
	},
	PasswordPolicyViolation: {
		code:        "14-1",
		errorType:   "Unique-Failure:",
		description: "Password cannot contain Firstname, Lastname or your E-Mail address!",
	},
	PasswordConfirmationMismatch: {
		code:        "14-2",
		errorType:   "Confirmation-Failure:",
		description: "Passwords do not match, please try again!",
	},
}

// Code returns the stable catalog code of the kind.
func (k FormErrorKind) Code() string {
	return formEntries[k].code
}

func formRecord(kind FormErrorKind, target, description string) Record {
	r := formEntries[kind].render(target)
	if description != "" {
		r.Description = description
	}
	return r
}

// Empty reports a required field that was absent or blank.
func Empty(target, message string) Record {
	return formRecord(EmptyRequiredField, target, message)
}

// TooShort reports a value below the minimum length.
func TooShort(target, label string, min int) Record {
	return formRecord(BelowMinimumLength, target, fmt.Sprintf("%s must contain at least %d characters!", label, min))
}

// TooLong reports a value above the maximum length.
func TooLong(target, label string, max int) Record {
	return formRecord(AboveMaximumLength, target, fmt.Sprintf("%s cannot contain more than %d characters!", label, max))
}

// WrongClass reports characters outside the allowed class.
func WrongClass(target, label, expected string) Record {
	return formRecord(WrongCharacterClass, target, fmt.Sprintf("%s can only contain %s!", label, expected))
}

// MissingClass reports a required character class that was not found.
func MissingClass(target, label, expected string) Record {
	return formRecord(MissingRequiredCharacterClass, target, fmt.Sprintf("%s has to contain at least %s!", label, expected))
}

// BadFormat reports a value that could not be parsed into the expected type.
func BadFormat(target, given, expected string) Record {
	return formRecord(InvalidFormat, target,
		fmt.Sprintf("Invalid type of Input: Type of Input given: %s. Type of Input is expected to be: %s", given, expected))
}

// BadEmail reports an e-mail address with an unexpected shape.
func BadEmail(target string) Record {
	return formRecord(InvalidEmailShape, target, "")
}

// PasswordPolicy reports a password rejected by the password policy.
func PasswordPolicy(target string) Record {
	return formRecord(PasswordPolicyViolation, target, "")
}

// ConfirmationMismatch reports a password confirmation that differs.
func ConfirmationMismatch(target string) Record {
	return formRecord(PasswordConfirmationMismatch, target, "")
}
