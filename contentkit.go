package contentkit

import (
	"context"
	"time"

	"github.com/goliatone/go-contentkit/internal/catalog"
	catalogcmd "github.com/goliatone/go-contentkit/internal/commands/catalog"
	"github.com/goliatone/go-contentkit/internal/di"
	"github.com/goliatone/go-contentkit/internal/guides"
	"github.com/goliatone/go-contentkit/internal/resolver"
	"github.com/goliatone/go-contentkit/internal/rotation"
	"github.com/goliatone/go-contentkit/internal/stats"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// CatalogService exports the document cache contract for consumers of the
// contentkit package.
type CatalogService = catalog.Service

// ResolverService exports the fallback resolver contract.
type ResolverService = resolver.Service

// GuideService exports the guide composer contract.
type GuideService = guides.Service

// ComposeRequest exports the guide composition request.
type ComposeRequest = guides.ComposeRequest

// RotationSelector exports the deterministic daily selector.
type RotationSelector = rotation.Selector

// StatisticsMonitor exports the live statistics monitor.
type StatisticsMonitor = stats.Monitor

// Resolution exports the per-lookup resolution outcome.
type Resolution = interfaces.Resolution

// Statistics exports the monitor snapshot DTO.
type Statistics = interfaces.Statistics

// Document exports the loaded content document.
type Document = interfaces.Document

// DocumentSource exports the source contract custom backends implement.
type DocumentSource = interfaces.DocumentSource

// Logger exports the logging contract used across the module.
type Logger = interfaces.Logger

// LoggerProvider exports the logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// PreloadCatalogHandler exports the preload command handler.
type PreloadCatalogHandler = catalogcmd.PreloadCatalogHandler

// InvalidateCacheHandler exports the cache invalidation command handler.
type InvalidateCacheHandler = catalogcmd.InvalidateCacheHandler

// ResetStatisticsHandler exports the statistics reset command handler.
type ResetStatisticsHandler = catalogcmd.ResetStatisticsHandler

// Module is the top level content resolution runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI
// overrides. Configuration problems are the only construction failure.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// ResolveString returns the best available text for a key. The result walks
// the fallback chain and bottoms out at a formatted rendering of the key, so
// the returned string is never empty for a non-empty key.
func (m *Module) ResolveString(ctx context.Context, domain, key, locale string) string {
	if m == nil || m.container == nil {
		return ""
	}
	return m.container.ResolverService().ResolveString(ctx, domain, key, locale).Value
}

// ResolveStringWithFallback resolves a key with a caller-supplied fallback
// inserted ahead of the formatted-key floor. An empty fallback is ignored.
func (m *Module) ResolveStringWithFallback(ctx context.Context, domain, key, locale, fallback string) string {
	if m == nil || m.container == nil {
		return fallback
	}
	return m.container.ResolverService().ResolveStringWithFallback(ctx, domain, key, locale, fallback).Value
}

// ResolveList returns the best available list for a key. A total miss yields
// an empty slice, never nil handling surprises for range loops.
func (m *Module) ResolveList(ctx context.Context, domain, key, locale string) []string {
	if m == nil || m.container == nil {
		return []string{}
	}
	values, _ := m.container.ResolverService().ResolveList(ctx, domain, key, locale)
	return values
}

// Resolution returns the full outcome of a string lookup for diagnostic
// consumers: value, tier, resolved locale, and whether a fallback served it.
func (m *Module) Resolution(ctx context.Context, domain, key, locale string) Resolution {
	if m == nil || m.container == nil {
		return Resolution{Domain: domain, Key: key}
	}
	return m.container.ResolverService().ResolveString(ctx, domain, key, locale)
}

// DailyRotatingString picks one entry from a resolved list, keyed on the
// calendar date. Every caller sharing a catalog sees the same pick on the
// same day. A zero date uses the module clock; an empty list degrades to the
// string resolution floor for the same key.
func (m *Module) DailyRotatingString(ctx context.Context, domain, key string, date time.Time, locale string) string {
	if m == nil || m.container == nil {
		return ""
	}
	if date.IsZero() {
		date = m.container.Clock()()
	}

	values, _ := m.container.ResolverService().ResolveList(ctx, domain, key, locale)
	if len(values) == 0 {
		return m.ResolveString(ctx, domain, key, locale)
	}

	value, err := m.container.RotationSelector().SelectFrom(date, values)
	if err != nil {
		return m.ResolveString(ctx, domain, key, locale)
	}
	return value
}

// ComposeInterpretation assembles a guide interpretation from localized
// template variants.
func (m *Module) ComposeInterpretation(ctx context.Context, req ComposeRequest) string {
	if m == nil || m.container == nil {
		return ""
	}
	return m.container.GuideService().Compose(ctx, req)
}

// ClearCache discards every cached document. Subsequent lookups reload from
// the configured source.
func (m *Module) ClearCache() {
	if m == nil || m.container == nil {
		return
	}
	m.container.CatalogService().Clear()
}

// Preload eagerly loads the given domains across every supported locale.
func (m *Module) Preload(ctx context.Context, domains []string) error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CatalogService().Preload(ctx, domains)
}

// Statistics returns a snapshot of the error and fallback counters.
func (m *Module) Statistics() Statistics {
	if m == nil || m.container == nil {
		return Statistics{}
	}
	return m.container.Monitor().Snapshot()
}

// ResetStatistics zeroes every counter. Intended for tests and controlled
// rollovers.
func (m *Module) ResetStatistics() {
	if m == nil || m.container == nil {
		return
	}
	m.container.Monitor().Reset()
}

// HighErrorRate reports whether the fallback rate crossed the configured
// threshold. Always false while no errors have been recorded.
func (m *Module) HighErrorRate() bool {
	if m == nil || m.container == nil {
		return false
	}
	return m.container.Monitor().IsErrorRateHigh(m.container.Config.Stats.ErrorRateThreshold)
}

// Catalog returns the configured document cache.
func (m *Module) Catalog() CatalogService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CatalogService()
}

// Resolver returns the configured fallback resolver.
func (m *Module) Resolver() ResolverService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ResolverService()
}

// Guides returns the configured guide composer.
func (m *Module) Guides() GuideService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.GuideService()
}

// Rotation returns the deterministic daily selector.
func (m *Module) Rotation() *RotationSelector {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.RotationSelector()
}

// Stats returns the live statistics monitor.
func (m *Module) Stats() *StatisticsMonitor {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Monitor()
}

// DefaultLocale returns the configured default locale code.
func (m *Module) DefaultLocale() string {
	if m == nil || m.container == nil {
		return ""
	}
	return m.container.LocaleResolver().Default().Code()
}

// Locales returns the supported locale codes in configured order.
func (m *Module) Locales() []string {
	if m == nil || m.container == nil {
		return []string{}
	}
	return m.container.LocaleResolver().Codes()
}
