// Package chat holds the provider-agnostic request/response types and the
// openai-go backed completer.
package chat

import (
	"context"
	"errors"
)

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var (
	// ErrEmptyChoices is returned when the endpoint answers without candidates.
	ErrEmptyChoices = errors.New("empty completion choices")
	// ErrModelRequired is returned when a request names no model.
	ErrModelRequired = errors.New("model is required")
)

// Message is one role-tagged entry of a request. Order matters.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Request is the payload for a single completion call.
type Request struct {
	Model    string
	Messages []Message
	// Temperature is omitted from the wire payload when nil.
	Temperature *float64
}

// Float returns a pointer to v, for Request.Temperature.
func Float(v float64) *float64 {
	return &v
}

// Completer sends one request and returns the text of the first candidate.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Result is the outcome of one turn: either text or the error that replaced it.
type Result struct {
	Content string
	Err     error
	// TurnID correlates the result with its log entries. Empty when the
	// producer does not tag turns.
	TurnID string
}

// Succeeded wraps a successful completion.
func Succeeded(content string) Result {
	return Result{Content: content}
}

// Failed wraps a failed completion.
func Failed(err error) Result {
	return Result{Err: err}
}

// OK reports whether the turn produced content.
func (r Result) OK() bool {
	return r.Err == nil
}

// Text renders the result for display: the content, or "Error: <msg>".
func (r Result) Text() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Content
}
