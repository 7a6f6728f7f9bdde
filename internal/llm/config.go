package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/nrqlkit/nrqltutor/internal/backoff"
)

// Config selects and configures one provider.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the endpoint of OpenAI-compatible providers.
	BaseURL string
	Retry   backoff.Policy
}

// Settings is the llm section of the application config. Empty fields are
// filled from the vendor's standard environment variable and defaults.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

type vendor struct {
	name   string
	model  string
	keyEnv string
}

// vendors is also the discovery order when no provider is named.
var vendors = []vendor{
	{name: "gemini", model: "gemini-flash", keyEnv: "GEMINI_API_KEY"},
	{name: "openai", model: "gpt-4o-mini", keyEnv: "OPENAI_API_KEY"},
	{name: "anthropic", model: "claude-haiku", keyEnv: "ANTHROPIC_API_KEY"},
	{name: "openrouter", model: "google/gemini-2.0-flash-exp", keyEnv: "OPENROUTER_API_KEY"},
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

// DefaultRetry allows three attempts, a second apart at first.
func DefaultRetry() backoff.Policy {
	return backoff.Policy{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2,
	}
}

// Resolve builds the provider configuration from s. Without a provider the
// first vendor whose standard key variable is set is used. It reports false
// when no usable provider is found, which disables query explanations.
func Resolve(s Settings) (Config, bool) {
	name := s.Provider
	if name == "" {
		for _, v := range vendors {
			if os.Getenv(v.keyEnv) != "" {
				name = v.name
				break
			}
		}
	}
	if name == "" {
		return Config{}, false
	}

	cfg := Config{Provider: name, Model: s.Model, APIKey: s.APIKey, BaseURL: s.BaseURL, Retry: DefaultRetry()}
	if v, ok := lookupVendor(name); ok {
		if cfg.Model == "" {
			cfg.Model = v.model
		}
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv(v.keyEnv)
		}
	}
	return cfg, cfg.Validate() == nil
}

// Validate checks that the provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s provider needs llm.api_key or %s", c.Provider, v.keyEnv)
	}
	return nil
}
