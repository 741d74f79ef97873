package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
	dateShape  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

	// No leading/trailing/consecutive dots in either part, and the
	// domain must contain at least one dot.
	emailShape = regexp.MustCompile(
		`^[A-Za-z0-9_%+\-]+(\.[A-Za-z0-9_%+\-]+)*@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)

	usernameShape = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Usernames nobody may register, checked case-insensitively.
var reservedUsernames = []string{"admin", "administrator", "root", "system", "api", "www"}

// specialChars is the punctuation set that counts towards password
// strength. Anything outside it scores nothing.
const specialChars = "!@#$%^&*()-_=+[]{}|;:'\",.<>/?`~\\"

// ValidateID parses an opaque positive-integer identifier out of raw
// user input. It accepts ASCII digits only, so signs, decimals,
// scientific notation and hex are all rejected, as is anything that
// overflows a machine int. Leading zeros normalise ("007" -> 7).
func ValidateID(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || !digitsOnly.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ValidateDate reports whether raw is a real calendar date in strict
// YYYY-MM-DD form. After the shape check the components are round-tripped
// through a UTC time.Date so overflowing values like 2025-02-30 or
// 2025-13-01 (which Go silently normalises) come back different and fail.
func ValidateDate(raw string) bool {
	m := dateShape.FindStringSubmatch(raw)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ValidateURL reports whether raw is an absolute http or https URL.
func ValidateURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateEmail checks raw against the portal's email rules and collects
// every violated rule rather than stopping at the first, because the
// auth pages show users the complete list in one round trip.
func ValidateEmail(raw string) Result {
	email := strings.TrimSpace(raw)
	var errs []string

	if email == "" {
		return Fail("Email is required")
	}
	if len(email) > 254 {
		errs = append(errs, "Email must not exceed 254 characters")
	}
	if at := strings.Index(email, "@"); at > 64 {
		errs = append(errs, "Email local part must not exceed 64 characters")
	}
	if !emailShape.MatchString(email) {
		errs = append(errs, "Email format is invalid")
	}
	if len(errs) > 0 {
		return Fail(errs...)
	}
	return OK()
}

// PasswordStrength scores raw from 0 to 5, one point per rule met, and
// returns the human-readable list of rules still missing. It never
// rejects outright; callers pick their own acceptance threshold.
func PasswordStrength(raw string) (int, []string) {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	score := 0
	var missing []string
	rules := []struct {
		met  bool
		want string
	}{
		{len(raw) >= 8, "at least 8 characters"},
		{hasLower, "a lowercase letter"},
		{hasUpper, "an uppercase letter"},
		{hasDigit, "a number"},
		{hasSpecial, "a special character"},
	}
	for _, rule := range rules {
		if rule.met {
			score++
		} else {
			missing = append(missing, rule.want)
		}
	}
	return score, missing
}

// ValidateUsername enforces the username format: 3-20 characters of
// letters, digits and underscore, and not a reserved word.
func ValidateUsername(raw string) Result {
	name := strings.TrimSpace(raw)
	if len(name) < 3 || len(name) > 20 {
		return Fail("Username must be between 3 and 20 characters")
	}
	if !usernameShape.MatchString(name) {
		return Fail("Username may only contain letters, numbers and underscores")
	}
	lower := strings.ToLower(name)
	for _, reserved := range reservedUsernames {
		if lower == reserved {
			return Fail(fmt.Sprintf("Username %q is reserved", name))
		}
	}
	return OK()
}
