package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-contentkit/internal/domain"
)

// ErrSupportedLocalesRequired rejects configurations with an empty supported-locale list.
var ErrSupportedLocalesRequired = errors.New("contentkit config: at least one supported locale is required")

// ErrDefaultLocaleRequired rejects configurations without a default locale.
var ErrDefaultLocaleRequired = errors.New("contentkit config: default locale is required")

// ErrDefaultLocaleUnsupported ensures the default locale appears in the supported set.
var ErrDefaultLocaleUnsupported = errors.New("contentkit config: default locale must be in the supported locale list")

// ErrRotationEpochInvalid rejects rotation epochs that do not parse as YYYY-MM-DD.
var ErrRotationEpochInvalid = errors.New("contentkit config: rotation epoch is invalid")

// ErrErrorRateThresholdInvalid rejects negative error-rate thresholds.
var ErrErrorRateThresholdInvalid = errors.New("contentkit config: error rate threshold must be zero or positive")

// ErrPreloadDomainUnknown rejects preload lists that name undeclared domains.
var ErrPreloadDomainUnknown = errors.New("contentkit config: preload domain is not declared")

var ErrCommandTimeoutInvalid = errors.New("contentkit config: command timeout must be zero or positive")
var ErrMarkdownFeatureRequired = errors.New("contentkit config: markdown feature must be enabled to configure markdown")
var ErrMarkdownContentDirRequired = errors.New("contentkit config: markdown content directory is required when markdown is enabled")
var ErrLoggingProviderRequired = errors.New("contentkit config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("contentkit config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("contentkit config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("contentkit config: logging format is invalid")

// Config aggregates locale, cache, rotation, and guide settings for the
// resolution engine. Fields intentionally use simple types so host
// applications can map their own configuration formats onto them.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Cache         CacheConfig
	Rotation      RotationConfig
	Guides        GuidesConfig
	Stats         StatsConfig
	Markdown      MarkdownConfig
	Commands      CommandsConfig
	Logging       LoggingConfig
	Features      Features
}

// CacheConfig captures content cache behaviour. The cache itself is always
// on; these settings control eager loading.
type CacheConfig struct {
	PreloadDomains []string
	PreloadOnStart bool
}

// RotationConfig anchors the deterministic daily rotation.
type RotationConfig struct {
	// Epoch is the YYYY-MM-DD date rotation ordinals count from. All
	// deployments sharing a catalog must share an epoch.
	Epoch string
}

// EpochTime parses the configured epoch at UTC midnight.
func (r RotationConfig) EpochTime() (time.Time, error) {
	value := strings.TrimSpace(r.Epoch)
	if value == "" {
		return time.Time{}, ErrRotationEpochInvalid
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrRotationEpochInvalid, value)
	}
	return parsed, nil
}

// GuidesConfig captures template composition settings.
type GuidesConfig struct {
	DefaultPersona string
}

// StatsConfig captures monitoring thresholds.
type StatsConfig struct {
	// ErrorRateThreshold is compared against fallbacks-per-error by
	// IsErrorRateHigh. Zero keeps the comparison but trips on any rate.
	ErrorRateThreshold float64
}

// MarkdownConfig captures filesystem and parser behaviour for the Markdown
// document source.
type MarkdownConfig struct {
	Enabled        bool
	ContentDir     string
	Pattern        string
	Recursive      bool
	LocalePatterns map[string]string
	RenderHTML     bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Commands bool
	Markdown bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults: English-only catalog, fixed
// 2020-01-01 rotation epoch, console logging.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Locales:       []string{"en"},
		Cache:         CacheConfig{},
		Rotation: RotationConfig{
			Epoch: "2020-01-01",
		},
		Guides: GuidesConfig{
			DefaultPersona: "sage",
		},
		Stats: StatsConfig{
			ErrorRateThreshold: 0.25,
		},
		Markdown: MarkdownConfig{
			ContentDir:     "content",
			Pattern:        "*.md",
			Recursive:      true,
			LocalePatterns: map[string]string{},
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks. Configuration errors are
// the one class of failure the engine reports loudly instead of absorbing.
func (cfg Config) Validate() error {
	locales := normalizeLocales(cfg.Locales)
	if len(locales) == 0 {
		return ErrSupportedLocalesRequired
	}
	defaultLocale := strings.TrimSpace(cfg.DefaultLocale)
	if defaultLocale == "" {
		return ErrDefaultLocaleRequired
	}
	if !containsLocale(locales, defaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, defaultLocale)
	}
	if _, err := cfg.Rotation.EpochTime(); err != nil {
		return err
	}
	if cfg.Stats.ErrorRateThreshold < 0 {
		return ErrErrorRateThresholdInvalid
	}
	for _, name := range cfg.Cache.PreloadDomains {
		if !domain.IsKnown(domain.Parse(name)) {
			return fmt.Errorf("%w: %s", ErrPreloadDomainUnknown, name)
		}
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeLocales(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func containsLocale(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
