// Package config loads nrqltutor settings.
//
// Precedence (highest to lowest): explicitly set flags > NRQLTUTOR_ env vars >
// config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// NRQLTUTOR_NERDGRAPH_API_KEY -> nerdgraph.api_key.
const EnvPrefix = "NRQLTUTOR_"

const (
	DefaultRegion       = "US"
	DefaultTimeout      = 30 * time.Second
	DefaultPollInterval = 10 * time.Second
	DefaultLogLevel     = "info"
)

// Config is the resolved application configuration.
type Config struct {
	AccountID    int             `koanf:"account_id"`
	NerdGraph    NerdGraphConfig `koanf:"nerdgraph"`
	PollInterval time.Duration   `koanf:"poll_interval"`
	DB           string          `koanf:"db"`
	Log          LogConfig       `koanf:"log"`
	LLM          LLMConfig       `koanf:"llm"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

type NerdGraphConfig struct {
	APIKey   string        `koanf:"api_key"`
	Region   string        `koanf:"region"`
	Endpoint string        `koanf:"endpoint"`
	Timeout  time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// LLMConfig overrides provider discovery. Empty fields fall through to the
// provider-standard environment variables.
type LLMConfig struct {
	Provider string `koanf:"provider"`
	Model    string `koanf:"model"`
	APIKey   string `koanf:"api_key"`
	// BaseURL points openai at a compatible endpoint.
	BaseURL string `koanf:"base_url"`
}

// Demo reports whether no NerdGraph key is configured, in which case queries
// run against the offline engine.
func (c *Config) Demo() bool {
	return c.NerdGraph.APIKey == ""
}

// sections are the nested key groups; env and flag names are split on the
// first underscore only when they start with one of these.
var sections = []string{"nerdgraph", "log", "llm"}

// flagKeys maps CLI flag names that differ from their config keys.
var flagKeys = map[string]string{
	"account":   "account_id",
	"region":    "nerdgraph.region",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// DefaultFile resolves $XDG_CONFIG_HOME/nrqltutor/config.yaml.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nrqltutor", "config.yaml")
}

// Load reads configuration. cfgFile may be empty, in which case the default
// file is used if it exists. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"nerdgraph.region":  DefaultRegion,
		"nerdgraph.timeout": DefaultTimeout.String(),
		"poll_interval":     DefaultPollInterval.String(),
		"log.level":         DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if def := DefaultFile(); def != "" {
			if _, err := os.Stat(def); err == nil {
				used = def
			}
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = used
	cfg.NerdGraph.Region = strings.ToUpper(cfg.NerdGraph.Region)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	switch c.NerdGraph.Region {
	case "US", "EU":
	default:
		return fmt.Errorf("nerdgraph.region must be US or EU, got %q", c.NerdGraph.Region)
	}
	if c.AccountID < 0 {
		return fmt.Errorf("account_id must be positive, got %d", c.AccountID)
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("poll_interval must be at least 1s, got %s", c.PollInterval)
	}
	if c.NerdGraph.Timeout <= 0 {
		return fmt.Errorf("nerdgraph.timeout must be positive, got %s", c.NerdGraph.Timeout)
	}
	return nil
}

// envKey turns NRQLTUTOR_NERDGRAPH_API_KEY into nerdgraph.api_key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec+"_"); ok {
			return sec + "." + rest
		}
	}
	return key
}
