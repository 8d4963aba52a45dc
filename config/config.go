// Package config loads the service configuration from YAML or JSON files
// with environment overrides.
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

	"github.com/ajoux/workplan/core/metrics"
	"github.com/ajoux/workplan/infra/notify"
)

type Config struct {
	Server  ServerConfig   `json:"server"`
	Plan    PlanConfig     `json:"plan"`
	Metrics metrics.Config `json:"metrics"`
	Notify  notify.Config  `json:"notify"`
}

// Load reads the file at path (format by extension), applies W_ environment
// overrides, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. W_SERVER__ADDR=:9090
	if err := k.Load(env.Provider("W_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "w_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Plan.SetDefaults()
	cfg.Notify.SetDefaults()
	if err := cfg.Plan.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Notify.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
