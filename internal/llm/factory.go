package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/store"
)

// NewProvider builds the configured vendor client behind logging and retry:
// caller → retry → logging → vendor. Every attempt is logged.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, logger *zap.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropic(cfg)
	case "openai":
		base, err = NewOpenAI(cfg)
	case "gemini":
		base, err = NewGemini(ctx, cfg)
	case "openrouter":
		base, err = NewOpenRouter(cfg)
	case "mock":
		base = NewScripted()
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, repo, logger), cfg.Retry), nil
}
