package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AuthValidator checks the login and registration forms. Unlike the
// job-role pipeline these checks accumulate every failure, because the
// auth pages show the user the full list of problems in one round trip.
type AuthValidator struct{}

// NewAuthValidator returns the portal's auth form validator.
func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// ValidateEmail applies the portal email rules.
func (a *AuthValidator) ValidateEmail(email string) Result {
	return ValidateEmail(email)
}

// ValidatePassword requires every strength rule to pass, not just a
// score threshold: registration is the one place we insist on all five.
func (a *AuthValidator) ValidatePassword(password string) Result {
	score, missing := PasswordStrength(password)
	if score == 5 {
		return OK()
	}
	errs := make([]string, 0, len(missing))
	for _, m := range missing {
		errs = append(errs, "Password must contain "+m)
	}
	return Fail(errs...)
}

// ValidateName checks a forename or surname. Names are NFC-normalised
// first so decomposed accents compare the same as precomposed ones, and
// any Unicode letter is accepted alongside spaces, hyphens and
// apostrophes.
func (a *AuthValidator) ValidateName(field, name string) Result {
	trimmed := strings.TrimSpace(norm.NFC.String(name))
	if trimmed == "" {
		return Fail(field + " is required")
	}
	if len([]rune(trimmed)) > 50 {
		return Fail(field + " must not exceed 50 characters")
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return Fail(field + " may only contain letters, spaces, hyphens and apostrophes")
		}
	}
	return OK()
}

// ValidateLoginData checks the login form: both fields present, email
// well-formed. Password strength is not re-checked at login.
func (a *AuthValidator) ValidateLoginData(email, password string) Result {
	var errs []string
	if r := a.ValidateEmail(email); !r.Valid {
		errs = append(errs, r.Errors...)
	}
	if strings.TrimSpace(password) == "" {
		errs = append(errs, "Password is required")
	}
	if len(errs) > 0 {
		return Fail(errs...)
	}
	return OK()
}

// ValidateRegistrationData runs every registration check unconditionally
// and concatenates all resulting errors.
func (a *AuthValidator) ValidateRegistrationData(email, password, forename, surname string) Result {
	var errs []string
	if r := a.ValidateEmail(email); !r.Valid {
		errs = append(errs, r.Errors...)
	}
	if r := a.ValidatePassword(password); !r.Valid {
		errs = append(errs, r.Errors...)
	}
	if r := a.ValidateName("Forename", forename); !r.Valid {
		errs = append(errs, r.Errors...)
	}
	if r := a.ValidateName("Surname", surname); !r.Valid {
		errs = append(errs, r.Errors...)
	}
	if len(errs) > 0 {
		return Fail(errs...)
	}
	return OK()
}
