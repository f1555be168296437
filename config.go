package contentkit

import "github.com/goliatone/go-contentkit/internal/runtimeconfig"

var (
	ErrSupportedLocalesRequired   = runtimeconfig.ErrSupportedLocalesRequired
	ErrDefaultLocaleRequired      = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleUnsupported   = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrRotationEpochInvalid       = runtimeconfig.ErrRotationEpochInvalid
	ErrErrorRateThresholdInvalid  = runtimeconfig.ErrErrorRateThresholdInvalid
	ErrPreloadDomainUnknown       = runtimeconfig.ErrPreloadDomainUnknown
	ErrCommandTimeoutInvalid      = runtimeconfig.ErrCommandTimeoutInvalid
	ErrMarkdownFeatureRequired    = runtimeconfig.ErrMarkdownFeatureRequired
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	CacheConfig    = runtimeconfig.CacheConfig
	RotationConfig = runtimeconfig.RotationConfig
	GuidesConfig   = runtimeconfig.GuidesConfig
	StatsConfig    = runtimeconfig.StatsConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
