// Package assistant builds the requests for the interactive and one-shot
// chat flows and turns completer outcomes into results.
package assistant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/minhyannv/hello-ai-go/pkg/chat"
	configpkg "github.com/minhyannv/hello-ai-go/pkg/config"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
)

var errNoCompleter = errors.New("completer is required")

// Assistant answers single, independent turns. It keeps no history: every
// request carries the system instruction and the current input only.
type Assistant struct {
	completer    chat.Completer
	model        string
	systemPrompt string
	temperature  float64

	logger  loggerpkg.Logger
	verbose bool
	turnID  func() string
}

// New builds an Assistant from cfg.
func New(completer chat.Completer, cfg configpkg.Config, opts ...Option) (*Assistant, error) {
	if completer == nil {
		return nil, errNoCompleter
	}
	cfg = configpkg.Normalize(cfg)
	d := applyOptions(opts)
	if d.turnID == nil {
		d.turnID = uuid.NewString
	}

	loggerpkg.Debug(cfg.Verbose, d.logger, "assistant init", loggerpkg.Fields{
		"model":       cfg.Model,
		"temperature": cfg.Temperature,
		"base_url":    cfg.BaseURL,
	})
	return &Assistant{
		completer:    completer,
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
		temperature:  cfg.Temperature,
		logger:       d.logger,
		verbose:      cfg.Verbose,
		turnID:       d.turnID,
	}, nil
}

// Request builds the payload for one turn: the system instruction followed
// by userInput verbatim.
func (a *Assistant) Request(userInput string) chat.Request {
	return chat.Request{
		Model: a.model,
		Messages: []chat.Message{
			chat.SystemMessage(a.systemPrompt),
			chat.UserMessage(userInput),
		},
		Temperature: chat.Float(a.temperature),
	}
}

// Reply sends userInput and reports the outcome. Failures are returned in
// the Result rather than as an error so the caller can keep going.
func (a *Assistant) Reply(ctx context.Context, userInput string) chat.Result {
	if ctx == nil {
		ctx = context.Background()
	}
	id := a.turnID()
	loggerpkg.Debug(a.verbose, a.logger, "turn start", loggerpkg.Fields{
		"turn":  id,
		"bytes": len(userInput),
	})

	content, err := a.completer.Complete(ctx, a.Request(userInput))
	if err != nil {
		loggerpkg.Debug(a.verbose, a.logger, "turn failed", loggerpkg.Fields{
			"turn":  id,
			"error": err.Error(),
		})
		res := chat.Failed(err)
		res.TurnID = id
		return res
	}

	loggerpkg.Debug(a.verbose, a.logger, "turn done", loggerpkg.Fields{
		"turn":  id,
		"bytes": len(content),
	})
	res := chat.Succeeded(content)
	res.TurnID = id
	return res
}
