package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nrqlkit/nrqltutor/internal/store"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, v := range vendors {
		t.Setenv(v.keyEnv, "")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		settings Settings
		ok       bool
		want     Config
	}{
		{name: "nothing configured"},
		{
			name:     "settings win over environment",
			env:      map[string]string{"OPENAI_API_KEY": "sk-env"},
			settings: Settings{Provider: "anthropic", Model: "claude-sonnet", APIKey: "sk-ant"},
			ok:       true,
			want:     Config{Provider: "anthropic", Model: "claude-sonnet", APIKey: "sk-ant"},
		},
		{
			name:     "named provider without key",
			settings: Settings{Provider: "gemini"},
			want:     Config{Provider: "gemini", Model: "gemini-flash"},
		},
		{
			name: "discovered from environment",
			env:  map[string]string{"ANTHROPIC_API_KEY": "sk-ant", "OPENROUTER_API_KEY": "sk-or"},
			ok:   true,
			want: Config{Provider: "anthropic", Model: "claude-haiku", APIKey: "sk-ant"},
		},
		{
			name:     "key from environment for named provider",
			env:      map[string]string{"OPENROUTER_API_KEY": "sk-or"},
			settings: Settings{Provider: "openrouter", Model: "openai/gpt-4o-mini"},
			ok:       true,
			want:     Config{Provider: "openrouter", Model: "openai/gpt-4o-mini", APIKey: "sk-or"},
		},
		{
			name:     "mock needs no key",
			settings: Settings{Provider: "mock"},
			ok:       true,
			want:     Config{Provider: "mock"},
		},
		{
			name:     "unknown provider",
			settings: Settings{Provider: "palm", APIKey: "k"},
			want:     Config{Provider: "palm", APIKey: "k"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKeys(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, ok := Resolve(tt.settings)
			assert.Equal(t, tt.ok, ok)
			if tt.want.Provider == "" {
				return
			}
			tt.want.Retry = DefaultRetry()
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock", Retry: fastPolicy()}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())

	_, err = NewProvider(context.Background(), Config{Provider: "palm"}, nil, nil)
	assert.Error(t, err)

	_, err = NewProvider(context.Background(), Config{Provider: "openai"}, nil, nil)
	assert.ErrorContains(t, err, "init openai provider")
}

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.events = append(r.events, d)
	return nil
}

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	repo := &recordingRepo{}
	s := NewScripted(Reply{Body: `{"answer":"yes","reason":"r"}`, Tokens: Tokens{In: 11, Out: 4}})
	p := WithLogging(s, repo, zap.New(core))

	ctx := WithPurpose(context.Background(), "explain")
	_, err := p.Complete(ctx, Prompt{System: "Judge.", User: "SELECT 1", Format: verdict})
	require.NoError(t, err)
	_, err = p.Complete(ctx, Prompt{User: "again"})
	require.Error(t, err)

	require.Len(t, repo.events, 2)
	ok := repo.events[0]
	assert.Equal(t, "explain", ok.Purpose)
	assert.Equal(t, "mock", ok.Provider)
	assert.True(t, ok.Success)
	assert.Equal(t, 11, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nJudge.")
	assert.Contains(t, ok.RequestBody, "[format verdict]")
	assert.Contains(t, ok.ResponseBody, `"answer"`)

	failed := repo.events[1]
	assert.False(t, failed.Success)
	assert.NotEmpty(t, failed.ErrorMessage)

	assert.Equal(t, 1, logs.FilterMessage("llm completion").Len())
	assert.Equal(t, 1, logs.FilterMessage("llm completion failed").Len())
}

func TestWithLogging_NoRepo(t *testing.T) {
	p := WithLogging(NewScripted(Reply{Body: `"x"`}), nil, nil)
	_, err := p.Complete(context.Background(), Prompt{User: "q"})
	assert.NoError(t, err)
}

func TestPriceOf(t *testing.T) {
	tests := []struct {
		model string
		want  Price
		ok    bool
	}{
		{"gpt-4o-mini", Price{In: 0.15, Out: 0.6}, true},
		{"gpt-4o-mini-2024-07-18", Price{In: 0.15, Out: 0.6}, true},
		{"claude-haiku-4-5-20251001", Price{In: 1, Out: 5}, true},
		{"anthropic/claude-sonnet-4-5", Price{In: 3, Out: 15}, true},
		{"google/gemini-2.0-flash-exp:free", Price{}, true},
		{"scripted", Price{}, false},
	}
	for _, tt := range tests {
		got, ok := PriceOf(tt.model)
		assert.Equal(t, tt.ok, ok, tt.model)
		assert.Equal(t, tt.want, got, tt.model)
	}
	assert.InDelta(t, 3.5, Price{In: 1, Out: 5}.Of(Tokens{In: 1_000_000, Out: 500_000}), 1e-9)
}
