// Package validation holds every business rule the portal applies to
// untrusted form input before anything is forwarded to the backend API.
//
// Validators never panic and never return Go errors for bad user input:
// they always hand back a Result the caller can branch on. A panic out
// of this package is a bug, not a validation failure.
package validation

// Result is the outcome of any validator in this package. Valid is true
// exactly when Errors is empty, so callers can check either one.
type Result struct {
	Valid  bool
	Errors []string
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result carrying one or more messages.
func Fail(msgs ...string) Result {
	return Result{Valid: false, Errors: msgs}
}

// First returns the first error message, or "" when the result passed.
// Handy for the fail-fast validators that only ever carry one message.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}
