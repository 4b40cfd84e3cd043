package contact

import "encoding/json"

// GenericErrorMessage is shown when the request body cannot be parsed at
// all, so no specific validation failure exists to report.
const GenericErrorMessage = "Something went wrong. Please try again."

// Patch maps Datastar signal names to their new values. Names absent
// from a patch leave the matching browser signals untouched.
type Patch map[string]any

// SuccessPatch shows the success banner, hides the error banner and
// resets every form field signal to empty.
func SuccessPatch() Patch {
	return Patch{
		"showSuccess":  true,
		"showError":    false,
		"errorMessage": "",
		"name":         "",
		"email":        "",
		"phone":        "",
		"service":      "",
		"message":      "",
	}
}

// ErrorPatch shows the error banner with the given message. Field
// signals are omitted so values the visitor already typed stay put.
func ErrorPatch(message string) Patch {
	return Patch{
		"showSuccess":  false,
		"showError":    true,
		"errorMessage": message,
	}
}

// JSON serializes the patch for a datastar-patch-signals event. JSON
// encoding escapes double quotes in values; the browser's parser
// recovers the original text.
func (p Patch) JSON() ([]byte, error) {
	return json.Marshal(p)
}
