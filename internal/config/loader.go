package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "SIGHTWORDS_"
	envConfig  = "SIGHTWORDS_CONFIG"
	envDBAlias = "SIGHTWORDS_DB"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) from path, or SIGHTWORDS_CONFIG when path is empty
//  3. env (prefix SIGHTWORDS_), e.g. SIGHTWORDS_LOG_LEVEL
func Load(path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// SIGHTWORDS_LOG_LEVEL -> log_level. Underscores are kept to match the
	// koanf tags; SIGHTWORDS_DB is the short form of SIGHTWORDS_DB_PATH.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		if s == envDBAlias {
			return "db_path"
		}
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
