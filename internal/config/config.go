package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Deployment environments. Everything that is not development gets the
// production security posture.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DevSessionSecret is used only when no secret is configured in a
// development deployment. Validate refuses it everywhere else.
const DevSessionSecret = "insecure-dev-secret-change-me-please"

// Config holds runtime configuration for dockpanel.
type Config struct {
	ListenAddr  string `json:"listen_addr" yaml:"listen_addr"`
	Environment string `json:"environment" yaml:"environment"`
	LogLevel    string `json:"log_level" yaml:"log_level"`

	// SessionSecret keys the session cookie encryption and signing.
	// Required outside development; there is deliberately no baked-in
	// production default.
	SessionSecret string `json:"session_secret" yaml:"session_secret"`

	// DBPath is the bbolt user database file.
	DBPath string `json:"db_path" yaml:"db_path"`

	// StaticDir, when set, is served as the panel UI behind the access
	// gateway.
	StaticDir string `json:"static_dir" yaml:"static_dir"`

	// InventorySource selects how containers are listed: "cli" shells out
	// to the docker binary, "sdk" talks to the engine API directly.
	InventorySource  string        `json:"inventory_source" yaml:"inventory_source"`
	DockerBinary     string        `json:"docker_binary" yaml:"docker_binary"`
	InventoryTimeout time.Duration `json:"inventory_timeout" yaml:"inventory_timeout"`

	MetricsEnabled bool `json:"metrics_enabled" yaml:"metrics_enabled"`

	// Chat relay (OpenAI-compatible endpoint).
	OpenAIAPIKey  string `json:"openai_api_key" yaml:"openai_api_key"`
	OpenAIBaseURL string `json:"openai_base_url" yaml:"openai_base_url"`
	ChatModel     string `json:"chat_model" yaml:"chat_model"`
}

// DefaultConfig returns a sane default configuration.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:       ":3000",
		Environment:      EnvProduction,
		LogLevel:         "info",
		DBPath:           "dockpanel.db",
		InventorySource:  "cli",
		DockerBinary:     "docker",
		InventoryTimeout: 10 * time.Second,
		MetricsEnabled:   true,
		OpenAIBaseURL:    "https://api.openai.com/v1",
		ChatModel:        "gpt-4o-mini",
	}
}

// Load reads the optional yaml config file, then applies environment
// overrides on top. A missing file is fine; a malformed one is not.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Development reports whether the relaxed local-development posture is
// active (plain-HTTP cookies, dev session secret allowed).
func (c *Config) Development() bool {
	return c.Environment == EnvDevelopment
}

// Validate returns non-fatal warnings plus a hard error when the config
// cannot be run safely. Refusing to start beats silently signing sessions
// with a guessable key.
func (c *Config) Validate() ([]string, error) {
	var warnings []string

	switch c.InventorySource {
	case "cli", "sdk":
	default:
		return nil, fmt.Errorf("unknown inventory_source %q (want \"cli\" or \"sdk\")", c.InventorySource)
	}

	if c.SessionSecret == "" {
		if !c.Development() {
			return nil, errors.New("session_secret is required outside development; set DOCKPANEL_SESSION_SECRET")
		}
		warnings = append(warnings, "no session secret configured; using the development fallback, sessions are forgeable")
	}
	if c.SessionSecret == DevSessionSecret && !c.Development() {
		return nil, errors.New("the development session secret must not be used outside development")
	}

	if c.InventoryTimeout <= 0 {
		warnings = append(warnings, "inventory_timeout disabled; a hung docker command will pin requests")
	}
	if c.OpenAIAPIKey == "" {
		warnings = append(warnings, "no openai_api_key configured; the chat relay will return errors")
	}
	return warnings, nil
}

// SessionSecretOrDev returns the configured secret, falling back to the
// development constant only when Validate allowed that.
func (c *Config) SessionSecretOrDev() string {
	if c.SessionSecret == "" {
		return DevSessionSecret
	}
	return c.SessionSecret
}
