package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CV upload limits. The upload middleware enforces these before the
// validator ever sees the request; the constants live here so there is
// one source of truth for both sides.
const (
	MaxCVSizeBytes = 5 << 20 // 5 MB
)

// AllowedCVTypes is the MIME allow-list for uploaded CVs.
var AllowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// FileDescriptor is the already-parsed metadata of an uploaded file.
// The bytes themselves stay with the upload middleware; the validator
// only reads metadata.
type FileDescriptor struct {
	OriginalName string
	MimeType     string
	SizeBytes    int64
}

// ApplicationInput is the application form plus the uploaded CV
// descriptor, nil when no file arrived at all.
type ApplicationInput struct {
	ApplicantName string
	Email         string
	CoverLetter   string
	CV            *FileDescriptor
}

// ApplicationValidator checks a job application before it is forwarded
// to the backend.
type ApplicationValidator struct{}

// NewApplicationValidator returns the portal's application validator.
func NewApplicationValidator() *ApplicationValidator {
	return &ApplicationValidator{}
}

// Validate runs the application rules in order and stops at the first
// failure. A missing CV is reported distinctly from a rejected one so
// the form can tell the user which of the two happened.
func (v *ApplicationValidator) Validate(input ApplicationInput) Result {
	name := strings.TrimSpace(norm.NFC.String(input.ApplicantName))
	if name == "" {
		return Fail("Applicant name is required")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' && r != '.' {
			return Fail("Applicant name may only contain letters, spaces, hyphens, apostrophes and periods")
		}
	}

	if r := ValidateEmail(input.Email); !r.Valid {
		return Fail(r.Errors...)
	}

	if input.CV == nil {
		return Fail("A CV file is required")
	}
	if !AllowedCVTypes[input.CV.MimeType] {
		return Fail("CV must be a PDF or Word document")
	}
	if input.CV.SizeBytes <= 0 || input.CV.SizeBytes > MaxCVSizeBytes {
		return Fail("CV must be 5MB or smaller")
	}

	return OK()
}
