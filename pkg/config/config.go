// Package config loads the server configuration from YAML and environment
// variables. Feature flags are resolved once here and passed down explicitly.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quaylabs/multisearch-mcp/pkg/ddgs"
)

const (
	DefaultServerName    = "multisearch-mcp"
	DefaultServerVersion = "1.0.0"
	DefaultLogLevel      = "info"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Engine  ddgs.Config   `yaml:"engine"`
	Tools   ToolsConfig   `yaml:"tools"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig names the MCP server implementation.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ToolsConfig gates the optional tools. Unset flags fall back to their
// documented defaults: fetch on, legacy search off.
type ToolsConfig struct {
	FetchEnabled        *bool `yaml:"fetch_enabled"`
	LegacySearchEnabled *bool `yaml:"legacy_search_enabled"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file, layering defaults and env overrides. An
// empty path yields the default configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return ApplyEnvDefaults(cfg).WithDefaults(), nil
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Server.Name) == "" {
		c.Server.Name = DefaultServerName
	}
	if strings.TrimSpace(c.Server.Version) == "" {
		c.Server.Version = DefaultServerVersion
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = DefaultLogLevel
	}
	return c
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Tools.FetchEnabled == nil {
		if flag := envBool("MULTISEARCH_FETCH_ENABLED"); flag != nil {
			cfg.Tools.FetchEnabled = flag
		}
	}
	if cfg.Tools.LegacySearchEnabled == nil {
		if flag := envBool("MULTISEARCH_LEGACY_SEARCH_ENABLED"); flag != nil {
			cfg.Tools.LegacySearchEnabled = flag
		}
	}
	if cfg.Engine.Proxy == "" {
		cfg.Engine.Proxy = strings.TrimSpace(os.Getenv("MULTISEARCH_ENGINE_PROXY"))
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = strings.TrimSpace(os.Getenv("MULTISEARCH_LOG_LEVEL"))
	}
	return cfg
}

// FetchEnabled resolves the fetch tool flag; it defaults to enabled.
func (c ToolsConfig) FetchEnabledOrDefault() bool {
	return isEnabled(c.FetchEnabled, true)
}

// LegacySearchEnabledOrDefault resolves the legacy multiplexed search flag;
// it defaults to disabled.
func (c ToolsConfig) LegacySearchEnabledOrDefault() bool {
	return isEnabled(c.LegacySearchEnabled, false)
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}

func envBool(name string) *bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "true", "1", "yes", "on":
		v := true
		return &v
	case "false", "0", "no", "off":
		v := false
		return &v
	}
	return nil
}
