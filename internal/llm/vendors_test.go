package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// stub serves one canned JSON reply and keeps the decoded request bodies.
type stub struct {
	status int
	header http.Header
	reply  any
	bodies []map[string]any
}

func (s *stub) serve(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.bodies = append(s.bodies, body)
		for k, vs := range s.header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if s.status != 0 {
			w.WriteHeader(s.status)
		}
		_ = json.NewEncoder(w).Encode(s.reply)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []any{map[string]any{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 12},
	}
}

func newTestAnthropic(t *testing.T, s *stub) *Anthropic {
	t.Helper()
	a, err := NewAnthropic(Config{APIKey: "sk-test", Model: "claude-haiku"},
		option.WithBaseURL(s.serve(t)), option.WithMaxRetries(0))
	require.NoError(t, err)
	return a
}

func TestAnthropic_Structured(t *testing.T) {
	s := &stub{reply: anthropicMessage(`{"answer":"yes","reason":"r"}`, "end_turn")}
	a := newTestAnthropic(t, s)
	assert.Equal(t, "claude-haiku-4-5-20251001", a.Model())

	c, err := a.Complete(context.Background(), Prompt{
		System: "Judge.", User: "Is NRQL SQL-like?", Format: verdict, MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"yes","reason":"r"}`, string(c.Body))
	assert.Equal(t, Tokens{In: 40, Out: 12}, c.Tokens)
	assert.Equal(t, StopEnd, c.Stop)

	require.Len(t, s.bodies, 1)
	assert.Contains(t, s.bodies[0], "system")
	assert.Contains(t, s.bodies[0], "output_config")
}

func TestAnthropic_MaxTokens(t *testing.T) {
	s := &stub{reply: anthropicMessage(`{"answer":"ye`, "max_tokens")}
	_, err := newTestAnthropic(t, s).Complete(context.Background(), Prompt{User: "q", Format: verdict, MaxTokens: 8})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestAnthropic_Errors(t *testing.T) {
	apiError := map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
	}

	s := &stub{status: http.StatusTooManyRequests, header: http.Header{"Retry-After": {"7"}}, reply: apiError}
	_, err := newTestAnthropic(t, s).Complete(context.Background(), Prompt{User: "q", MaxTokens: 8})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)

	s = &stub{status: http.StatusInternalServerError, reply: apiError}
	_, err = newTestAnthropic(t, s).Complete(context.Background(), Prompt{User: "q", MaxTokens: 8})
	var down *ErrUnavailable
	assert.ErrorAs(t, err, &down)
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []any{map[string]any{"index": 0, "finish_reason": finish, "message": map[string]any{"role": "assistant", "content": content}}},
		"usage":   map[string]any{"prompt_tokens": 30, "completion_tokens": 9, "total_tokens": 39},
	}
}

func TestOpenAI_Structured(t *testing.T) {
	s := &stub{reply: chatCompletion(`{"answer":"no","reason":"r"}`, "stop")}
	o, err := NewOpenAI(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: s.serve(t)})
	require.NoError(t, err)

	c, err := o.Complete(context.Background(), Prompt{System: "Judge.", User: "q", Format: verdict, MaxTokens: 64})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"no","reason":"r"}`, string(c.Body))
	assert.Equal(t, "gpt-4o-mini-2024-07-18", c.Model)
	assert.Equal(t, 9, c.Tokens.Out)

	require.Len(t, s.bodies, 1)
	msgs, _ := s.bodies[0]["messages"].([]any)
	assert.Len(t, msgs, 2)
	format, _ := s.bodies[0]["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAI_FreeTextAndLength(t *testing.T) {
	s := &stub{reply: chatCompletion("Counts rows per app.", "length")}
	o, err := NewOpenAI(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: s.serve(t)})
	require.NoError(t, err)

	c, err := o.Complete(context.Background(), Prompt{User: "q"})
	require.NoError(t, err)
	assert.JSONEq(t, `"Counts rows per app."`, string(c.Body))
	assert.Equal(t, StopLength, c.Stop)
}

func TestOpenAI_Errors(t *testing.T) {
	apiError := map[string]any{"error": map[string]any{"message": "nope", "type": "requests"}}
	for status, check := range map[int]func(error) bool{
		http.StatusTooManyRequests: func(err error) bool { var e *ErrRateLimit; return assert.ErrorAs(t, err, &e) },
		http.StatusBadGateway:      func(err error) bool { var e *ErrUnavailable; return assert.ErrorAs(t, err, &e) },
		http.StatusBadRequest:      func(err error) bool { var e *ErrRejected; return assert.ErrorAs(t, err, &e) },
	} {
		s := &stub{status: status, reply: apiError}
		o, err := NewOpenAI(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: s.serve(t)})
		require.NoError(t, err)
		_, err = o.Complete(context.Background(), Prompt{User: "q"})
		check(err)
	}
}

func TestOpenRouter(t *testing.T) {
	s := &stub{reply: chatCompletion(`"fine"`, "stop")}
	o, err := NewOpenRouter(Config{APIKey: "sk-or", Model: "google/gemini-2.0-flash-exp", BaseURL: s.serve(t)})
	require.NoError(t, err)
	assert.Equal(t, "openrouter", o.Name())
	assert.Equal(t, "google/gemini-2.0-flash-exp", o.Model())

	_, err = o.Complete(context.Background(), Prompt{User: "q"})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", s.bodies[0]["model"])

	_, err = NewOpenRouter(Config{})
	assert.Error(t, err)
}

func TestAlias(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-5-20250929", alias("claude-sonnet", anthropicAliases))
	assert.Equal(t, "gemini-2.5-pro", alias("gemini-pro", geminiAliases))
	assert.Equal(t, "gemini-1.5-flash", alias("gemini-1.5-flash", geminiAliases))
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(verdict.Schema)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"answer", "reason"}, s.Required)

	require.Contains(t, s.Properties, "answer")
	assert.Equal(t, []string{"yes", "no"}, s.Properties["answer"].Enum)

	notes := s.Properties["notes"]
	require.NotNil(t, notes)
	assert.Equal(t, genai.TypeArray, notes.Type)
	assert.Equal(t, genai.TypeString, notes.Items.Type)
	require.NotNil(t, notes.MinItems)
	assert.Equal(t, int64(1), *notes.MinItems)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, retryAfter(http.Header{"Retry-After": {"3"}}))
	assert.Zero(t, retryAfter(http.Header{"Retry-After": {"soon"}}))
	assert.Zero(t, retryAfter(http.Header{}))
}
