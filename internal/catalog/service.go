package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-contentkit/internal/locales"
	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/internal/stats"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Service exposes the memoizing document cache sitting between resolution and
// the configured document source.
type Service interface {
	// Get returns the cached document for a (domain, locale) pair, loading it
	// on first use. Failed loads are never cached: the caller receives an
	// explicit empty document together with the load error, and the next Get
	// retries the source.
	Get(ctx context.Context, domain, locale string) (*interfaces.Document, error)
	// Clear discards every cached document. Safe to call while lookups are in
	// flight; loads that started before the clear serve their waiters but do
	// not repopulate the cache.
	Clear()
	// Preload eagerly loads the given domains across every supported locale.
	// Best-effort: per-document failures are recorded and skipped, only
	// context cancellation aborts the batch.
	Preload(ctx context.Context, domains []string) error
	// CachedDocuments reports how many documents are currently memoized.
	CachedDocuments() int
}

// ServiceOption configures the cache at construction time.
type ServiceOption func(*service)

// WithLogger attaches a logger for load failures and lifecycle events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// service implements Service.
type service struct {
	source  interfaces.DocumentSource
	locales *locales.Resolver
	monitor *stats.Monitor
	logger  interfaces.Logger

	group singleflight.Group

	mu         sync.RWMutex
	documents  map[string]*interfaces.Document
	generation uint64
}

// NewService constructs the cache over a document source. The monitor records
// load failures; it is required so degraded content never goes unobserved.
func NewService(source interfaces.DocumentSource, localeResolver *locales.Resolver, monitor *stats.Monitor, opts ...ServiceOption) Service {
	s := &service{
		source:    source,
		locales:   localeResolver,
		monitor:   monitor,
		logger:    logging.NoOp(),
		documents: map[string]*interfaces.Document{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Get(ctx context.Context, domainName, locale string) (*interfaces.Document, error) {
	key := cacheKey(domainName, locale)

	s.mu.RLock()
	cached, ok := s.documents[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// Coalesce concurrent first-time lookups: exactly one source load runs
	// per key, every waiter shares its outcome.
	loaded, err, _ := s.group.Do(key, func() (any, error) {
		return s.load(ctx, domainName, locale, key)
	})
	if err != nil {
		return emptyDocument(domainName, locale), err
	}

	document, ok := loaded.(*interfaces.Document)
	if !ok || document == nil {
		return emptyDocument(domainName, locale), nil
	}
	return document, nil
}

// load runs inside the singleflight group. The generation snapshot taken
// before the source call decides whether the result may enter the cache: a
// Clear issued mid-load bumps the generation and the stale result is only
// served to the waiters already queued behind this load.
func (s *service) load(ctx context.Context, domainName, locale, key string) (*interfaces.Document, error) {
	s.mu.RLock()
	cached, ok := s.documents[key]
	generation := s.generation
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	loaded, err := s.source.Load(ctx, domainName, locale)
	if err != nil {
		s.recordLoadFailure(domainName, locale, err)
		return nil, err
	}

	document := normalizeDocument(loaded, domainName, locale)

	s.mu.Lock()
	if s.generation == generation {
		s.documents[key] = document
	}
	s.mu.Unlock()

	s.logger.Debug("document loaded",
		"domain", domainName,
		"locale", locale,
		"texts", len(document.Texts),
		"lists", len(document.Lists),
	)
	return document, nil
}

func (s *service) Clear() {
	s.mu.Lock()
	cleared := len(s.documents)
	s.documents = map[string]*interfaces.Document{}
	s.generation++
	s.mu.Unlock()

	s.logger.Debug("catalog cleared", "documents", cleared)
}

func (s *service) Preload(ctx context.Context, domains []string) error {
	codes := s.locales.Codes()

	var loaded, failed int
	for _, domainName := range domains {
		trimmed := strings.TrimSpace(domainName)
		if trimmed == "" {
			continue
		}
		for _, code := range codes {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.Get(ctx, trimmed, code); err != nil {
				failed++
				continue
			}
			loaded++
		}
	}

	s.logger.Info("catalog preload finished", "loaded", loaded, "failed", failed)
	return nil
}

func (s *service) CachedDocuments() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

func (s *service) recordLoadFailure(domainName, locale string, err error) {
	ref := documentRef(domainName, locale)

	kind := interfaces.ErrorDocumentNotFound
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Cancellation reflects the caller, not the catalog; keep it out of
		// the content health counters.
		s.logger.Debug("document load canceled", "domain", domainName, "locale", locale)
		return
	case errors.Is(err, interfaces.ErrDocumentMalformed):
		kind = interfaces.ErrorDocumentMalformed
	}

	s.monitor.RecordError(kind, ref)
	logging.WithDocumentContext(s.logger, domainName, locale, "").
		Warn("document load failed", "error", err, "kind", string(kind))
}

func cacheKey(domainName, locale string) string {
	return strings.ToLower(strings.TrimSpace(domainName)) + "|" + strings.ToLower(strings.TrimSpace(locale))
}

func documentRef(domainName, locale string) string {
	return strings.TrimSpace(domainName) + "/" + strings.TrimSpace(locale)
}

// emptyDocument is the explicit zero payload returned alongside load errors
// so resolution can continue through its fallback tiers.
func emptyDocument(domainName, locale string) *interfaces.Document {
	return &interfaces.Document{
		Domain: strings.TrimSpace(domainName),
		Locale: strings.TrimSpace(locale),
	}
}

// normalizeDocument stamps identity fields and deep-copies payload maps so a
// source cannot mutate cached state after the fact.
func normalizeDocument(loaded *interfaces.Document, domainName, locale string) *interfaces.Document {
	document := &interfaces.Document{
		Domain: strings.TrimSpace(domainName),
		Locale: strings.TrimSpace(locale),
	}
	if loaded == nil {
		return document
	}

	if len(loaded.Texts) > 0 {
		document.Texts = make(map[string]string, len(loaded.Texts))
		for key, value := range loaded.Texts {
			document.Texts[key] = value
		}
	}
	if len(loaded.Lists) > 0 {
		document.Lists = make(map[string][]string, len(loaded.Lists))
		for key, values := range loaded.Lists {
			cloned := make([]string, len(values))
			copy(cloned, values)
			document.Lists[key] = cloned
		}
	}
	return document
}
