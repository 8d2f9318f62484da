// Package api holds the wire envelope shared by every endpoint.
package api

// Non-standard status codes kept from the original wire contract.
// Clients distinguish "fix your input" (470) from "this email is taken"
// (471) without parsing message text.
const (
	// StatusInvalidParameters reports malformed or missing caller-supplied fields.
	StatusInvalidParameters = 470

	// StatusEmailExists reports a signup attempt with an already registered email.
	StatusEmailExists = 471
)

// MessageResponse is the JSON body of every error and plain-message reply:
// {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
