package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all extractor settings, populated from environment variables.
type Config struct {
	InputFile  string
	OutputFile string
	SiteColumn string

	LogLevel  string
	LogFormat string

	// MetricsTextfile, when set, receives run metrics in Prometheus text
	// format for the node_exporter textfile collector.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		InputFile:       sharedcfg.EnvOrDefault("INPUT_FILE", "MonitoringSites_Summary_29092025.xlsx"),
		OutputFile:      sharedcfg.EnvOrDefault("OUTPUT_FILE", "site_coordinates.csv"),
		SiteColumn:      sharedcfg.EnvOrDefault("SITE_COLUMN", domain.DefaultSiteColumn),
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	// Empty variables fall back to the defaults above, so only blank
	// values reach these checks.
	if strings.TrimSpace(cfg.InputFile) == "" {
		return nil, errors.New("INPUT_FILE is required")
	}
	if strings.TrimSpace(cfg.OutputFile) == "" {
		return nil, errors.New("OUTPUT_FILE is required")
	}
	if strings.TrimSpace(cfg.SiteColumn) == "" {
		return nil, errors.New("SITE_COLUMN is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}
