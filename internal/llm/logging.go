package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/store"
)

// Logged records every completion as an LLMRequestEvent and a log entry.
type Logged struct {
	inner  Provider
	repo   store.EventRepo
	logger *zap.Logger
}

// WithLogging wraps p. repo and logger may be nil.
func WithLogging(p Provider, repo store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logged{inner: p, repo: repo, logger: logger}
}

func (l *Logged) Name() string  { return l.inner.Name() }
func (l *Logged) Model() string { return l.inner.Model() }

func (l *Logged) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	c, err := l.inner.Complete(ctx, p)

	ev := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.Model(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(p),
	}
	if c != nil {
		ev.Model = c.Model
		ev.InputTokens = c.Tokens.In
		ev.OutputTokens = c.Tokens.Out
		ev.ResponseBody = string(c.Body)
	}

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.logger.Warn("llm completion failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Debug("llm completion", fields...)
	}

	if l.repo != nil {
		if rerr := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev); rerr != nil {
			l.logger.Warn("record llm request", zap.Error(rerr))
		}
	}
	return c, err
}

// transcript is the human readable request shown by `llm view`.
func transcript(p Prompt) string {
	var b strings.Builder
	if p.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", p.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", p.User)
	if p.Format != nil {
		if def, err := json.MarshalIndent(p.Format.Schema, "", "  "); err == nil {
			fmt.Fprintf(&b, "\n[format %s]\n%s\n", p.Format.Name, def)
		}
	}
	return b.String()
}
