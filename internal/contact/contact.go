// Package contact implements the contact form domain: parsing and
// sanitizing submissions, validating them, and building the Datastar
// signal patches streamed back to the browser. Submissions are never
// stored; they are validated, logged and discarded.
package contact

import (
	"net/url"
	"strings"
	"unicode"
)

// Submission holds the sanitized fields of one contact form post.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// FromForm builds a Submission from form-encoded values, sanitizing
// every field.
func FromForm(values url.Values) Submission {
	return Submission{
		Name:    Sanitize(values.Get("name")),
		Email:   Sanitize(values.Get("email")),
		Phone:   Sanitize(values.Get("phone")),
		Service: Sanitize(values.Get("service")),
		Message: Sanitize(values.Get("message")),
	}
}

// Sanitize drops non-ASCII and control characters and trims surrounding
// whitespace. Every user-supplied field passes through here before
// validation or logging.
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r > unicode.MaxASCII || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
