package validation

import (
	"strconv"
	"strings"
	"time"

	"jobportal/internal/models"
)

// JobRoleInput is the raw string bag lifted straight out of the admin
// form body. Nothing here is trusted or trimmed yet.
type JobRoleInput struct {
	RoleName              string
	Description           string
	Responsibilities      string
	JobSpecLink           string
	Location              string
	Capability            string
	Band                  string
	ClosingDate           string
	Status                string
	NumberOfOpenPositions string
}

// JobRoleValidator runs the admin job-role form through an ordered,
// fail-fast rule pipeline. The option sets are injected at construction
// so the eventual source of truth (the backend) can be swapped in
// without touching the rules.
type JobRoleValidator struct {
	locations    map[string]bool
	capabilities map[string]bool
	bands        map[string]bool
	statuses     map[string]bool

	// now is swappable for the past-date tests.
	now func() time.Time
}

// NewJobRoleValidator builds a validator over the portal's standard
// option sets.
func NewJobRoleValidator() *JobRoleValidator {
	return NewJobRoleValidatorWithOptions(
		models.Locations, models.Capabilities, models.Bands, models.Statuses)
}

// NewJobRoleValidatorWithOptions builds a validator over caller-supplied
// option sets. Matching is case-sensitive and exact.
func NewJobRoleValidatorWithOptions(locations, capabilities, bands, statuses []string) *JobRoleValidator {
	return &JobRoleValidator{
		locations:    toSet(locations),
		capabilities: toSet(capabilities),
		bands:        toSet(bands),
		statuses:     toSet(statuses),
		now:          time.Now,
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Validate checks input against every job-role rule in order and stops
// at the first failure, so the result carries at most one message.
// isUpdate relaxes the past-date rule, which lets admins edit postings
// whose closing date has already gone by.
//
// The presence check deliberately does not say which field is missing.
func (v *JobRoleValidator) Validate(input JobRoleInput, isUpdate bool) Result {
	fields := []string{
		input.RoleName, input.Description, input.Responsibilities,
		input.JobSpecLink, input.Location, input.Capability, input.Band,
		input.ClosingDate, input.Status, input.NumberOfOpenPositions,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return Fail("All fields are required")
		}
	}

	if !v.locations[input.Location] {
		return Fail("Location must be one of the listed office locations")
	}
	if !v.capabilities[input.Capability] {
		return Fail("Capability must be one of the listed capabilities")
	}
	if !v.bands[input.Band] {
		return Fail("Band must be Junior, Mid or Senior")
	}
	if !v.statuses[input.Status] {
		return Fail("Status must be Open, Closed or On Hold")
	}

	positions, err := strconv.Atoi(strings.TrimSpace(input.NumberOfOpenPositions))
	if err != nil || positions < 1 {
		return Fail("Number of open positions must be at least 1")
	}

	if !ValidateDate(input.ClosingDate) {
		return Fail("Closing date must be a valid date in YYYY-MM-DD format")
	}
	if !isUpdate && v.isPastDate(input.ClosingDate) {
		return Fail("Closing date cannot be in the past")
	}

	if !ValidateURL(input.JobSpecLink) {
		return Fail("Job spec link must be a valid http or https URL")
	}

	if len(strings.TrimSpace(input.RoleName)) < 3 {
		return Fail("Role name must be at least 3 characters")
	}
	if len(strings.TrimSpace(input.Description)) < 10 {
		return Fail("Description must be at least 10 characters")
	}
	if len(strings.TrimSpace(input.Responsibilities)) < 10 {
		return Fail("Responsibilities must be at least 10 characters")
	}

	return OK()
}

// isPastDate reports whether the already-validated date falls strictly
// before today. Same-day closing is fine.
func (v *JobRoleValidator) isPastDate(date string) bool {
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return false
	}
	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
