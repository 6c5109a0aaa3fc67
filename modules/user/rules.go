package user

import (
	"github.com/felixkapfer/finalghecko/modules/auth"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Render targets of the account forms.
const (
	TargetFirstname       = "#Firstname"
	TargetLastname        = "#Lastname"
	TargetEmail           = "#Email"
	TargetPassword        = "#Password"
	TargetConfirmPassword = "#Confirm-Password"

	TargetRegisterFeedback = "#Register-Feedback-Error"
	TargetRegisterWrapper  = "#Register-Feedback-Error-Wrapper"
	TargetLoginFeedback    = "#Login-Feedback-Error"
	TargetLoginWrapper     = "#Login-Feedback-Error-Wrapper"
	TargetInvalidLogin     = "#Invalid-User-Credentials"
	TargetAccountFeedback  = "#Account-Feedback"
	TargetAccountWrapper   = "#Account-Feedback-Error-Wrapper"
)

const lettersOnly = "letters from a-z or A-Z! Spaces are not allowed"

// Rules holds the account validation policies chosen at startup.
type Rules struct {
	// EmailShape enables the address pattern check. When off only emptiness
	// is checked.
	EmailShape     bool
	PasswordPolicy validation.PasswordPolicy
}

func nameRules(label string) []validation.Rule {
	return []validation.Rule{validation.Alpha(label, lettersOnly), validation.MinLen(label, 2)}
}

func (r Rules) emailRules() []validation.Rule {
	if r.EmailShape {
		return []validation.Rule{validation.Email()}
	}
	return nil
}

func (r Rules) register(req RegisterRequest) []validation.Field {
	return []validation.Field{
		{Target: TargetFirstname, Value: req.FirstName, EmptyMessage: "Please enter your Firstname!", Rules: nameRules("Firstname")},
		{Target: TargetLastname, Value: req.LastName, EmptyMessage: "Please enter your Lastname!", Rules: nameRules("Lastname")},
		{Target: TargetEmail, Value: req.Email, EmptyMessage: "Please enter your E-Mail Address!", Rules: r.emailRules()},
		{
			Target:       TargetPassword,
			Value:        req.Password,
			EmptyMessage: "Please enter a Password!",
			Rules: validation.Join(
				validation.Strong("Password", 8),
				[]validation.Rule{
					validation.MaxBytes("Password", auth.MaxPasswordBytes),
					validation.Password(r.PasswordPolicy, req.FirstName, req.LastName, req.Email),
				},
			),
		},
		{
			Target:       TargetConfirmPassword,
			Value:        req.ConfirmPassword,
			EmptyMessage: "Please confirm your Password!",
			Rules:        []validation.Rule{validation.Equals(req.Password)},
		},
	}
}

func (r Rules) login(req LoginRequest) []validation.Field {
	return []validation.Field{
		{Target: TargetEmail, Value: req.Email, EmptyMessage: "Please enter your E-Mail Address!", Rules: r.emailRules()},
		{Target: TargetPassword, Value: req.Password, EmptyMessage: "Please enter your Password!"},
	}
}

func (r Rules) update(req UpdateRequest) []validation.Field {
	fields := []validation.Field{ownerField(req.OwnerID)}
	if req.FirstName != nil {
		fields = append(fields, validation.Field{Target: TargetFirstname, Value: *req.FirstName, EmptyMessage: "Please enter your Firstname!", Rules: nameRules("Firstname")})
	}
	if req.LastName != nil {
		fields = append(fields, validation.Field{Target: TargetLastname, Value: *req.LastName, EmptyMessage: "Please enter your Lastname!", Rules: nameRules("Lastname")})
	}
	return fields
}

func ownerField(ownerID string) validation.Field {
	return validation.Field{
		Target:       TargetAccountFeedback,
		Value:        ownerID,
		EmptyMessage: "Please validate that an user is logged in!",
	}
}
