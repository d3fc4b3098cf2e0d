package assistant

import (
	"context"
	"fmt"
	"io"

	"github.com/minhyannv/hello-ai-go/pkg/chat"
	configpkg "github.com/minhyannv/hello-ai-go/pkg/config"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
)

// Runner sends the fixed one-shot prompt.
type Runner struct {
	completer chat.Completer
	model     string
	prompt    string

	logger  loggerpkg.Logger
	verbose bool
}

// NewRunner builds a Runner from cfg.
func NewRunner(completer chat.Completer, cfg configpkg.Config, opts ...Option) (*Runner, error) {
	if completer == nil {
		return nil, errNoCompleter
	}
	cfg = configpkg.Normalize(cfg)
	d := applyOptions(opts)

	return &Runner{
		completer: completer,
		model:     cfg.Model,
		prompt:    cfg.Prompt,
		logger:    d.logger,
		verbose:   cfg.Verbose,
	}, nil
}

// Request builds the single-message payload. Temperature is left unset.
func (r *Runner) Request() chat.Request {
	return chat.Request{
		Model:    r.model,
		Messages: []chat.Message{chat.UserMessage(r.prompt)},
	}
}

// Run issues the request once and writes the first candidate's content to
// out followed by a newline.
func (r *Runner) Run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	loggerpkg.Debug(r.verbose, r.logger, "one-shot request", loggerpkg.Fields{
		"model":  r.model,
		"prompt": r.prompt,
	})
	content, err := r.completer.Complete(ctx, r.Request())
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}

	if _, err := fmt.Fprintln(out, content); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
