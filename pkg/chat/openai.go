package chat

import (
	"context"
	"fmt"
	"strings"

	configpkg "github.com/minhyannv/hello-ai-go/pkg/config"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Completer on top of the OpenAI chat completions API.
type OpenAIClient struct {
	client  openai.Client
	logger  loggerpkg.Logger
	verbose bool
}

// NewOpenAIClient builds a client from cfg. The SDK's own retries are turned
// off so every call maps to exactly one HTTP request.
func NewOpenAIClient(cfg configpkg.Config, logger loggerpkg.Logger) *OpenAIClient {
	cfg = configpkg.Normalize(cfg)
	logger = loggerpkg.OrNop(logger)
	if cfg.APIKey == "" {
		loggerpkg.Warn(logger, configpkg.EnvAPIKey+" is not set; requests will fail", nil)
	}

	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &OpenAIClient{
		client:  openai.NewClient(opts...),
		logger:  logger,
		verbose: cfg.Verbose,
	}
}

// Complete sends req and returns the first choice's message content.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	params, err := newChatParams(req)
	if err != nil {
		return "", err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(c.verbose, c.logger, "chat completion request", loggerpkg.Fields{
		"model":       req.Model,
		"messages":    len(req.Messages),
		"temperature": req.Temperature,
	})
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		loggerpkg.Debug(c.verbose, c.logger, "chat completion failed", loggerpkg.Fields{"error": err.Error()})
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyChoices
	}
	loggerpkg.Debug(c.verbose, c.logger, "chat completion received", loggerpkg.Fields{
		"choices":       len(completion.Choices),
		"finish_reason": completion.Choices[0].FinishReason,
	})
	return completion.Choices[0].Message.Content, nil
}

func newChatParams(req Request) (openai.ChatCompletionNewParams, error) {
	if strings.TrimSpace(req.Model) == "" {
		return openai.ChatCompletionNewParams{}, ErrModelRequired
	}
	messages, err := toOpenAIMessages(req.Messages)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	return params, nil
}

func toOpenAIMessages(messages []Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			return nil, fmt.Errorf("invalid message role at index %d: %q", i, msg.Role)
		}
	}
	return out, nil
}
