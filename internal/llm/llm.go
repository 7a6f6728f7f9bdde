// Package llm sends single-turn prompts to a hosted model and returns its
// answer, optionally constrained to a JSON schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model behind a vendor API.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Name is the vendor, e.g. "anthropic".
	Name() string
	// Model is the configured model id.
	Model() string
}

// Prompt is a system instruction and one user turn.
type Prompt struct {
	System string
	User   string

	// Format constrains the answer to a JSON schema. Without it the answer
	// is free text.
	Format *Format

	MaxTokens   int
	Temperature float64
}

// Format is a named JSON schema for structured answers. The name is used as
// the tool or schema name by vendors that require one.
type Format struct {
	Name        string
	Description string
	Schema      map[string]any
}

// Completion is a model answer. Body has been validated against the
// prompt's Format, if any.
type Completion struct {
	Body   json.RawMessage
	Model  string
	Tokens Tokens
	Stop   Stop
}

// Decode unmarshals the answer into v.
func (c *Completion) Decode(v any) error {
	return json.Unmarshal(c.Body, v)
}

type Tokens struct {
	In  int
	Out int
}

func (t Tokens) Total() int { return t.In + t.Out }

// Stop is why the model stopped generating.
type Stop string

const (
	StopEnd    Stop = "end"
	StopLength Stop = "length"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx in the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
