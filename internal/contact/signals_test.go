package contact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessPatch(t *testing.T) {
	p := SuccessPatch()

	assert.Equal(t, true, p["showSuccess"])
	assert.Equal(t, false, p["showError"])
	assert.Equal(t, "", p["errorMessage"])
	for _, field := range []string{"name", "email", "phone", "service", "message"} {
		assert.Equal(t, "", p[field], "field signal %q should reset to empty", field)
	}
	assert.Len(t, p, 9)
}

func TestSuccessPatch_FreshPerCall(t *testing.T) {
	p1 := SuccessPatch()
	p1["name"] = "mutated"

	p2 := SuccessPatch()
	assert.Equal(t, "", p2["name"])
}

func TestErrorPatch(t *testing.T) {
	p := ErrorPatch("Email is required")

	assert.Equal(t, false, p["showSuccess"])
	assert.Equal(t, true, p["showError"])
	assert.Equal(t, "Email is required", p["errorMessage"])

	// Field signals stay out of the patch so the browser keeps whatever
	// the visitor typed.
	for _, field := range []string{"name", "email", "phone", "service", "message"} {
		assert.NotContains(t, p, field)
	}
	assert.Len(t, p, 3)
}

func TestPatchJSON_EscapesQuotes(t *testing.T) {
	message := `Value "mowing" is not available`
	data, err := ErrorPatch(message).JSON()
	require.NoError(t, err)

	// Double quotes inside the message are escaped on the wire.
	assert.Contains(t, string(data), `\"mowing\"`)

	// A JSON parse on the client side recovers the original text.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, message, decoded["errorMessage"])
}

func TestPatchJSON_SuccessShape(t *testing.T) {
	data, err := SuccessPatch().JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, true, decoded["showSuccess"])
	assert.Equal(t, false, decoded["showError"])
	assert.Equal(t, "", decoded["name"])
	assert.Equal(t, "", decoded["message"])
}
