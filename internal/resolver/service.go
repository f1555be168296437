package resolver

import (
	"context"
	"strings"

	"github.com/goliatone/go-contentkit/internal/catalog"
	"github.com/goliatone/go-contentkit/internal/locales"
	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/internal/stats"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Service walks the fallback chain for string and list lookups. Every
// operation is total: a missing document, missing key, or unsupported locale
// degrades the result, it never fails the caller.
type Service interface {
	// ResolveString resolves a single string through the chain:
	// primary-locale document, base-language document, formatted key.
	ResolveString(ctx context.Context, domain, key, locale string) interfaces.Resolution
	// ResolveStringWithFallback inserts a caller-supplied fallback between
	// the base-language tier and the formatted-key floor. An empty fallback
	// is treated as absent.
	ResolveStringWithFallback(ctx context.Context, domain, key, locale, fallback string) interfaces.Resolution
	// ResolveList resolves an ordered list through the primary and
	// base-language tiers. There is no floor for lists; a total miss returns
	// an empty slice with the outcome tier set to none.
	ResolveList(ctx context.Context, domain, key, locale string) ([]string, interfaces.Resolution)
}

// ServiceOption configures the resolver at construction time.
type ServiceOption func(*service)

// WithLogger attaches a logger for fallback and floor events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	catalog catalog.Service
	locales *locales.Resolver
	monitor *stats.Monitor
	logger  interfaces.Logger
}

// NewService constructs the resolver over the document cache.
func NewService(catalogService catalog.Service, localeResolver *locales.Resolver, monitor *stats.Monitor, opts ...ServiceOption) Service {
	s := &service{
		catalog: catalogService,
		locales: localeResolver,
		monitor: monitor,
		logger:  logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) ResolveString(ctx context.Context, domainName, key, locale string) interfaces.Resolution {
	return s.ResolveStringWithFallback(ctx, domainName, key, locale, "")
}

func (s *service) ResolveStringWithFallback(ctx context.Context, domainName, key, locale, fallback string) interfaces.Resolution {
	match := s.matchLocale(domainName, locale)
	resolution := interfaces.Resolution{
		Domain:          domainName,
		Key:             key,
		RequestedLocale: strings.TrimSpace(locale),
		ResolvedLocale:  match.Locale.Code(),
	}

	// Tier 1: the resolved locale's own document. Load errors are recorded
	// by the catalog; the empty document it returns keeps the chain moving.
	primary, _ := s.catalog.Get(ctx, domainName, match.Locale.Code())
	if value, ok := primary.Text(key); ok {
		resolution.Value = value
		resolution.Tier = interfaces.TierPrimaryLocale
		return resolution
	}

	// Tier 2: the default locale's document, skipped when tier 1 already
	// read it.
	base := s.locales.Default()
	if !match.Locale.Equal(base) {
		baseDocument, _ := s.catalog.Get(ctx, domainName, base.Code())
		if value, ok := baseDocument.Text(key); ok {
			resolution.Value = value
			resolution.Tier = interfaces.TierBaseLanguage
			resolution.ResolvedLocale = base.Code()
			resolution.FallbackUsed = true
			s.monitor.RecordFallback(interfaces.TierBaseLanguage)
			return resolution
		}
	}

	// Tier 3: the caller-supplied fallback.
	if fallback != "" {
		resolution.Value = fallback
		resolution.Tier = interfaces.TierCustomFallback
		resolution.FallbackUsed = true
		s.monitor.RecordFallback(interfaces.TierCustomFallback)
		return resolution
	}

	// Tier 4: format the key itself. Always produces a value, so the
	// operation stays total even against an empty catalog.
	resolution.Value = FormatKey(key)
	resolution.Tier = interfaces.TierFormattedKey
	resolution.FallbackUsed = true
	s.monitor.RecordFallback(interfaces.TierFormattedKey)
	s.monitor.RecordError(interfaces.ErrorKeyMissing, contentRef(domainName, key))
	s.logger.Debug("content key missing, serving formatted key",
		"domain", domainName,
		"key", key,
		"locale", match.Locale.Code(),
	)
	return resolution
}

func (s *service) ResolveList(ctx context.Context, domainName, key, locale string) ([]string, interfaces.Resolution) {
	match := s.matchLocale(domainName, locale)
	resolution := interfaces.Resolution{
		Domain:          domainName,
		Key:             key,
		RequestedLocale: strings.TrimSpace(locale),
		ResolvedLocale:  match.Locale.Code(),
	}

	primary, _ := s.catalog.Get(ctx, domainName, match.Locale.Code())
	if values, ok := primary.List(key); ok {
		resolution.Tier = interfaces.TierPrimaryLocale
		return cloneList(values), resolution
	}

	base := s.locales.Default()
	if !match.Locale.Equal(base) {
		baseDocument, _ := s.catalog.Get(ctx, domainName, base.Code())
		if values, ok := baseDocument.List(key); ok {
			resolution.Tier = interfaces.TierBaseLanguage
			resolution.ResolvedLocale = base.Code()
			resolution.FallbackUsed = true
			s.monitor.RecordFallback(interfaces.TierBaseLanguage)
			return cloneList(values), resolution
		}
	}

	resolution.Tier = interfaces.TierNone
	s.monitor.RecordError(interfaces.ErrorKeyMissing, contentRef(domainName, key))
	s.logger.Debug("content list missing",
		"domain", domainName,
		"key", key,
		"locale", match.Locale.Code(),
	)
	return []string{}, resolution
}

// matchLocale resolves the requested locale and tallies requests that fall
// outside the supported set. Absent requests are not errors, they simply
// carry no preference.
func (s *service) matchLocale(domainName, locale string) locales.Match {
	match := s.locales.Match(locale)
	if !match.NoPreference && !match.Supported() {
		s.monitor.RecordError(interfaces.ErrorUnsupportedLocale, strings.TrimSpace(locale))
		s.logger.Debug("unsupported locale requested",
			"domain", domainName,
			"requested", strings.TrimSpace(locale),
			"resolved", match.Locale.Code(),
		)
	}
	return match
}

func contentRef(domainName, key string) string {
	return domainName + "/" + key
}

func cloneList(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
