package contact

import "strings"

// Services lists the selectable service slugs, in the order the contact
// page presents them.
var Services = []string{
	"mowing",
	"fertilization",
	"weed-control",
	"aeration",
	"landscaping",
	"cleanup",
}

const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxMessageLength = 2000
	minPhoneDigits   = 7
	maxPhoneDigits   = 15
)

// ValidationError reports the first check a submission failed. The
// message is user-facing and becomes the errorMessage signal.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Validate applies the field checks in form order and returns the first
// failure as a *ValidationError, or nil when the submission is valid.
func Validate(s Submission) error {
	if s.Name == "" {
		return &ValidationError{Message: "Name is required"}
	}
	if len(s.Name) < 2 {
		return &ValidationError{Message: "Name must be at least 2 characters"}
	}
	if len(s.Name) > maxNameLength {
		return &ValidationError{Message: "Name must be 100 characters or fewer"}
	}
	if s.Email == "" {
		return &ValidationError{Message: "Email is required"}
	}
	if !validEmail(s.Email) {
		return &ValidationError{Message: "Please enter a valid email address"}
	}
	if s.Phone == "" {
		return &ValidationError{Message: "Phone number is required"}
	}
	if !validPhone(s.Phone) {
		return &ValidationError{Message: "Please enter a valid phone number"}
	}
	if s.Service == "" {
		return &ValidationError{Message: "Please select a service"}
	}
	if !knownService(s.Service) {
		return &ValidationError{Message: "Please select a valid service"}
	}
	if s.Message == "" {
		return &ValidationError{Message: "Message is required"}
	}
	if len(s.Message) > maxMessageLength {
		return &ValidationError{Message: "Message must be 2000 characters or fewer"}
	}
	return nil
}

// validEmail accepts addresses with exactly one @, non-empty local and
// domain parts, and a dot somewhere in the domain.
func validEmail(email string) bool {
	if len(email) > maxEmailLength {
		return false
	}
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	return strings.Contains(domain, ".")
}

// validPhone accepts digits plus the separators + - . ( ) and space,
// with 7 to 15 digits total.
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == '.' || r == '(' || r == ')' || r == ' ':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

func knownService(slug string) bool {
	for _, s := range Services {
		if s == slug {
			return true
		}
	}
	return false
}
