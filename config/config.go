package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/factory"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/metrics"
)

// EnvPrefix marks environment overrides; "__" separates nested keys, so
// K_ROUTING__MAX_STOPS sets routing.max_stops.
const EnvPrefix = "K_"

type Config struct {
	Routing RoutingConfig  `json:"routing"`
	HTTP    HTTPConfig     `json:"http"`
	Metrics metrics.Config `json:"metrics"`
	Planner PlannerConfig  `json:"planner"`
	Sentry  SentryConfig   `json:"sentry"`
	// PlanLog selects the store keeping the planning history; nil disables it.
	PlanLog *factory.ModuleConfig `json:"plan_log"`
}

// Default returns a configuration with every section defaulted.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults defaults every section.
func (c *Config) SetDefaults() {
	c.Routing.SetDefaults()
	c.HTTP.SetDefaults()
	c.Metrics.SetDefaults()
	c.Planner.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Routing.Validate(); err != nil {
		return fmt.Errorf("routing: %w", err)
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := c.Planner.Validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if err := c.Sentry.Validate(); err != nil {
		return fmt.Errorf("sentry: %w", err)
	}
	if c.PlanLog != nil && c.PlanLog.Type == "" {
		return fmt.Errorf("plan_log: type is required")
	}
	return nil
}

// Load reads the YAML or JSON file at path, applies K_ environment
// overrides, defaults and validates the result. An empty path loads the
// environment and defaults only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
