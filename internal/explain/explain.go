// Package explain asks an LLM to break an NRQL query down clause by clause.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nrqlkit/nrqltutor/internal/llm"
)

// Purpose tags explanation requests in the LLM event log.
const Purpose = "explain"

// Explanation describes what a query does.
type Explanation struct {
	Summary string
	Clauses []Clause
	Tip     string
}

// Clause is one part of a query and what it contributes.
type Clause struct {
	Clause  string `json:"clause"`
	Meaning string `json:"meaning"`
}

// Config holds explanation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for explanations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.2,
	}
}

// Service explains queries with an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Summary string   `json:"summary"`
	Clauses []Clause `json:"clauses"`
	Tip     string   `json:"tip"`
}

// Explain returns the explanation of nrql.
func (s *Service) Explain(ctx context.Context, nrql string) (*Explanation, error) {
	nrql = strings.TrimSpace(nrql)
	if nrql == "" {
		return nil, errors.New("explain: empty query")
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	c, err := s.provider.Complete(ctx, llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(nrql),
		Format:      ExplanationFormat,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explain query: %w", err)
	}

	var out explanationOutput
	if err := c.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		Summary: out.Summary,
		Clauses: out.Clauses,
		Tip:     out.Tip,
	}, nil
}

// Markdown renders e for display.
func (e *Explanation) Markdown() string {
	var b strings.Builder
	b.WriteString(e.Summary)
	b.WriteString("\n\n")
	for _, c := range e.Clauses {
		fmt.Fprintf(&b, "- `%s`: %s\n", c.Clause, c.Meaning)
	}
	if e.Tip != "" {
		fmt.Fprintf(&b, "\n> **Tip:** %s\n", e.Tip)
	}
	return b.String()
}
