package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	configpkg "github.com/minhyannv/hello-ai-go/pkg/config"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
)

type capturedRequest struct {
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const completionBody = `{
  "id": "chatcmpl-test",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4",
  "choices": [
    {"index": 0, "finish_reason": "stop", "logprobs": null,
     "message": {"role": "assistant", "content": "Halo!", "refusal": null}},
    {"index": 1, "finish_reason": "stop", "logprobs": null,
     "message": {"role": "assistant", "content": "second", "refusal": null}}
  ]
}`

func newTestServer(t *testing.T, status int, body string, got *capturedRequest, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("unexpected Authorization header: %q", auth)
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if got != nil {
			if err := json.Unmarshal(raw, got); err != nil {
				t.Errorf("decode body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *OpenAIClient {
	cfg := configpkg.DefaultConfig()
	cfg.APIKey = "sk-test"
	cfg.BaseURL = baseURL + "/"
	return NewOpenAIClient(cfg, nil)
}

func TestOpenAIClientSendsMessagesAndTemperature(t *testing.T) {
	var got capturedRequest
	var calls int32
	srv := newTestServer(t, http.StatusOK, completionBody, &got, &calls)

	content, err := newTestClient(srv.URL).Complete(context.Background(), Request{
		Model:       "gpt-4",
		Messages:    []Message{SystemMessage("be friendly"), UserMessage("hello")},
		Temperature: Float(0.7),
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if content != "Halo!" {
		t.Fatalf("expected first choice content, got %q", content)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
	if got.Model != "gpt-4" {
		t.Fatalf("unexpected model: %q", got.Model)
	}
	if got.Temperature == nil || *got.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", got.Temperature)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "be friendly" {
		t.Fatalf("unexpected first message: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "hello" {
		t.Fatalf("unexpected second message: %+v", got.Messages[1])
	}
}

func TestOpenAIClientOmitsUnsetTemperature(t *testing.T) {
	var got capturedRequest
	var calls int32
	srv := newTestServer(t, http.StatusOK, completionBody, &got, &calls)

	_, err := newTestClient(srv.URL).Complete(context.Background(), Request{
		Model:    "gpt-4",
		Messages: []Message{UserMessage("tell me a joke")},
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got.Temperature != nil {
		t.Fatalf("expected temperature to be omitted, got %v", *got.Temperature)
	}
}

func TestOpenAIClientEmptyChoices(t *testing.T) {
	var calls int32
	body := `{"id":"chatcmpl-empty","object":"chat.completion","created":1700000000,"model":"gpt-4","choices":[]}`
	srv := newTestServer(t, http.StatusOK, body, nil, &calls)

	_, err := newTestClient(srv.URL).Complete(context.Background(), Request{
		Model:    "gpt-4",
		Messages: []Message{UserMessage("hi")},
	})
	if !errors.Is(err, ErrEmptyChoices) {
		t.Fatalf("expected ErrEmptyChoices, got %v", err)
	}
}

func TestOpenAIClientDoesNotRetryAPIErrors(t *testing.T) {
	var calls int32
	body := `{"error":{"message":"overloaded","type":"server_error","param":null,"code":null}}`
	srv := newTestServer(t, http.StatusInternalServerError, body, nil, &calls)

	_, err := newTestClient(srv.URL).Complete(context.Background(), Request{
		Model:    "gpt-4",
		Messages: []Message{UserMessage("hi")},
	})
	if err == nil {
		t.Fatal("expected error from failing endpoint")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected a single attempt, got %d", n)
	}
}

func TestOpenAIClientRejectsInvalidRoleBeforeSending(t *testing.T) {
	var calls int32
	srv := newTestServer(t, http.StatusOK, completionBody, nil, &calls)

	_, err := newTestClient(srv.URL).Complete(context.Background(), Request{
		Model:    "gpt-4",
		Messages: []Message{{Role: "tool", Content: "x"}},
	})
	if err == nil {
		t.Fatal("expected invalid role error")
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected no request, got %d", n)
	}
}

func TestNewOpenAIClientWarnsWithoutAPIKey(t *testing.T) {
	var logs bytes.Buffer
	cfg := configpkg.DefaultConfig()

	NewOpenAIClient(cfg, loggerpkg.NewWriterLogger(&logs))
	if !strings.Contains(logs.String(), "WARN  OPENAI_API_KEY is not set") {
		t.Fatalf("expected missing key warning, got %q", logs.String())
	}

	logs.Reset()
	cfg.APIKey = "sk-test"
	NewOpenAIClient(cfg, loggerpkg.NewWriterLogger(&logs))
	if logs.Len() != 0 {
		t.Fatalf("expected no warning with a key, got %q", logs.String())
	}
}
