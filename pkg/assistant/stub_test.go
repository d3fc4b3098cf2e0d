package assistant

import (
	"context"

	"github.com/minhyannv/hello-ai-go/pkg/chat"
)

// stubCompleter records requests and replies with a fixed outcome.
type stubCompleter struct {
	content  string
	err      error
	requests []chat.Request
}

func (s *stubCompleter) Complete(_ context.Context, req chat.Request) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}
