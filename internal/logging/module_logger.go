package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

const (
	rootModule     = "contentkit"
	catalogModule  = "contentkit.catalog"
	resolverModule = "contentkit.resolver"
	guidesModule   = "contentkit.guides"
	sourcesModule  = "contentkit.sources"
)

const (
	fieldDocumentDomain = "domain"
	fieldDocumentLocale = "locale"
	fieldDocumentSource = "source"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for the content cache.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// ResolverLogger returns the logger namespace reserved for fallback resolution.
func ResolverLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, resolverModule)
}

// GuidesLogger returns the logger namespace reserved for template composition.
func GuidesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, guidesModule)
}

// SourcesLogger returns the logger namespace reserved for document sources.
func SourcesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sourcesModule)
}

// WithDocumentContext enriches the provided logger with common document fields
// such as domain, locale, and originating source. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, domain, locale, source string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(domain); trimmed != "" {
		fields[fieldDocumentDomain] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldDocumentLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldDocumentSource] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
