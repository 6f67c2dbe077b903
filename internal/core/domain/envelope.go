package domain

import "encoding/json"

// Envelope is the JSON shape every backend endpoint answers with.
// On success the payload is always nested under data; a success response
// without that nesting is a contract violation, not a case to special-case.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// FailureMessage returns the human-readable reason carried by a failure
// envelope, preferring error over message and falling back to fallback
// when the backend supplied neither.
func (e Envelope) FailureMessage(fallback string) string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
