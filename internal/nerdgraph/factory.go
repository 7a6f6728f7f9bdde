package nerdgraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/store"
)

// NewQuerier creates the Querier for cfg: the NerdGraph client when an API
// key is set, the offline engine otherwise. Every query is logged and
// recorded; only the client retries.
func NewQuerier(cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Querier, error) {
	if cfg.APIKey == "" {
		return WithLogging(NewOffline(), eventRepo, logger), nil
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing nerdgraph client: %w", err)
	}

	// caller → retry → logging → client
	logged := WithLogging(client, eventRepo, logger)
	return WithRetry(logged, cfg.Retry), nil
}
