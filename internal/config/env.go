package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ApplyEnvOverrides reads configuration values from environment variables
// and overrides fields in the provided Config. Returns an error if
// parsing fails.
//
// Environment variables supported:
// - DOCKPANEL_LISTEN_ADDR (string, e.g. ":3000")
// - DOCKPANEL_ENV ("development" or "production")
// - DOCKPANEL_LOG_LEVEL ("debug", "info", "warn", "error")
// - DOCKPANEL_SESSION_SECRET (string)
// - DOCKPANEL_DB_PATH (string)
// - DOCKPANEL_STATIC_DIR (string)
// - DOCKPANEL_INVENTORY_SOURCE ("cli" or "sdk")
// - DOCKPANEL_DOCKER_BINARY (string)
// - DOCKPANEL_INVENTORY_TIMEOUT (duration, e.g. "10s")
// - DOCKPANEL_METRICS_ENABLED (bool)
// - OPENAI_API_KEY / DOCKPANEL_OPENAI_BASE_URL / DOCKPANEL_CHAT_MODEL
func ApplyEnvOverrides(cfg *Config) error {
	setString(&cfg.ListenAddr, "DOCKPANEL_LISTEN_ADDR")
	setString(&cfg.Environment, "DOCKPANEL_ENV")
	setString(&cfg.LogLevel, "DOCKPANEL_LOG_LEVEL")
	setString(&cfg.SessionSecret, "DOCKPANEL_SESSION_SECRET")
	setString(&cfg.DBPath, "DOCKPANEL_DB_PATH")
	setString(&cfg.StaticDir, "DOCKPANEL_STATIC_DIR")
	setString(&cfg.InventorySource, "DOCKPANEL_INVENTORY_SOURCE")
	setString(&cfg.DockerBinary, "DOCKPANEL_DOCKER_BINARY")
	setString(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&cfg.OpenAIBaseURL, "DOCKPANEL_OPENAI_BASE_URL")
	setString(&cfg.ChatModel, "DOCKPANEL_CHAT_MODEL")

	if v := os.Getenv("DOCKPANEL_INVENTORY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DOCKPANEL_INVENTORY_TIMEOUT %q: %w", v, err)
		}
		cfg.InventoryTimeout = d
	}
	if v := os.Getenv("DOCKPANEL_METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DOCKPANEL_METRICS_ENABLED %q: %w", v, err)
		}
		cfg.MetricsEnabled = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
