// Package completion wraps the external text-generation service.
package completion

import "context"

// Message is one role-tagged turn sent to the completion service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Roles recognized by the completion service.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Service generates one text response from an ordered list of messages.
type Service interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
