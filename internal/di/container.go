package di

import (
	"context"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-contentkit/internal/catalog"
	"github.com/goliatone/go-contentkit/internal/commands"
	catalogcmd "github.com/goliatone/go-contentkit/internal/commands/catalog"
	"github.com/goliatone/go-contentkit/internal/guides"
	"github.com/goliatone/go-contentkit/internal/locales"
	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/internal/logging/console"
	"github.com/goliatone/go-contentkit/internal/logging/gologger"
	"github.com/goliatone/go-contentkit/internal/resolver"
	"github.com/goliatone/go-contentkit/internal/rotation"
	"github.com/goliatone/go-contentkit/internal/runtimeconfig"
	"github.com/goliatone/go-contentkit/internal/sources"
	"github.com/goliatone/go-contentkit/internal/stats"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Container wires module dependencies. Services default to in-memory
// implementations; options swap in real sources and providers.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB  *bun.DB
	source interfaces.DocumentSource
	random *rand.Rand
	clock  func() time.Time

	localeResolver *locales.Resolver
	monitor        *stats.Monitor
	selector       *rotation.Selector

	catalogSvc  catalog.Service
	resolverSvc resolver.Service
	guideSvc    guides.Service

	preloadHandler    *catalogcmd.PreloadCatalogHandler
	invalidateHandler *catalogcmd.InvalidateCacheHandler
	resetHandler      *catalogcmd.ResetStatisticsHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the config-driven logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithDocumentSource overrides the default document source. The source feeds
// the catalog cache; composing layers is the caller's concern.
func WithDocumentSource(source interfaces.DocumentSource) Option {
	return func(c *Container) {
		c.source = source
	}
}

// WithBunDB attaches a database-backed catalog layer.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithRandom seeds the guide composer's variant selection. Tests inject a
// fixed seed for reproducible compositions.
func WithRandom(random *rand.Rand) Option {
	return func(c *Container) {
		c.random = random
	}
}

// WithClock overrides the wall clock used when callers do not supply a date.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithCatalogService overrides the default catalog cache binding.
func WithCatalogService(svc catalog.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithResolverService overrides the default resolver binding.
func WithResolverService(svc resolver.Service) Option {
	return func(c *Container) {
		c.resolverSvc = svc
	}
}

// WithGuideService overrides the default guide composer binding.
func WithGuideService(svc guides.Service) Option {
	return func(c *Container) {
		c.guideSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
// Configuration errors fail construction; nothing else does.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}

	localeResolver, err := locales.NewResolver(cfg.Locales, cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}
	c.localeResolver = localeResolver

	epoch, err := cfg.Rotation.EpochTime()
	if err != nil {
		return nil, err
	}
	c.selector = rotation.NewSelector(epoch)

	c.monitor = stats.NewMonitor()

	c.configureSources()

	if c.catalogSvc == nil {
		c.catalogSvc = catalog.NewService(
			c.source,
			c.localeResolver,
			c.monitor,
			catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)),
		)
	}

	if c.resolverSvc == nil {
		c.resolverSvc = resolver.NewService(
			c.catalogSvc,
			c.localeResolver,
			c.monitor,
			resolver.WithLogger(logging.ResolverLogger(c.loggerProvider)),
		)
	}

	if c.guideSvc == nil {
		guideOpts := []guides.ServiceOption{
			guides.WithLogger(logging.GuidesLogger(c.loggerProvider)),
		}
		if persona := strings.TrimSpace(cfg.Guides.DefaultPersona); persona != "" {
			guideOpts = append(guideOpts, guides.WithDefaultPersona(persona))
		}
		if c.random != nil {
			guideOpts = append(guideOpts, guides.WithRandom(c.random))
		}
		c.guideSvc = guides.NewService(c.resolverSvc, c.monitor, guideOpts...)
	}

	c.configureCommands()
	c.preloadOnStart()

	return c, nil
}

// configureLogging selects a provider from configuration unless one was
// injected. The gologger provider is only consulted when the logger feature
// is on; everything else gets the console provider.
func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}

	logCfg := c.Config.Logging
	if c.Config.Features.Logger && strings.EqualFold(strings.TrimSpace(logCfg.Provider), "gologger") {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
		return nil
	}

	minLevel := consoleLevel(logCfg.Level)
	c.loggerProvider = console.NewProvider(console.Options{MinLevel: &minLevel})
	return nil
}

// configureSources assembles the document source chain: database layer first,
// markdown content second. With neither configured the catalog runs over an
// empty in-memory source and resolution floors every lookup.
func (c *Container) configureSources() {
	if c.source != nil {
		return
	}

	layers := []interfaces.DocumentSource{}
	names := []string{}
	if c.bunDB != nil {
		layers = append(layers, sources.NewBun(c.bunDB))
		names = append(names, "bun")
	}
	if c.Config.Markdown.Enabled {
		layers = append(layers, sources.NewMarkdown(
			os.DirFS(c.Config.Markdown.ContentDir),
			sources.WithMarkdownPattern(c.Config.Markdown.Pattern),
			sources.WithMarkdownRecursive(c.Config.Markdown.Recursive),
			sources.WithMarkdownRenderHTML(c.Config.Markdown.RenderHTML),
		))
		names = append(names, "markdown")
	}

	logger := logging.SourcesLogger(c.loggerProvider)
	switch len(layers) {
	case 0:
		c.source = sources.NewMemory()
		logger.Debug("source chain configured", "layers", "memory")
	case 1:
		c.source = layers[0]
		logger.Debug("source chain configured", "layers", names[0])
	default:
		c.source = sources.NewComposite(layers...)
		logger.Debug("source chain configured", "layers", strings.Join(names, ","))
	}
}

// configureCommands builds the catalog command handlers. Handlers are always
// constructed; the feature gate guards execution so hosts can flip the flag
// without rewiring.
func (c *Container) configureCommands() {
	cfg := c.Config
	gates := catalogcmd.FeatureGates{
		CommandsEnabled: func() bool { return cfg.Features.Commands && cfg.Commands.Enabled },
	}
	logger := commands.CommandLogger(c.loggerProvider, "catalog")

	preloadOpts := []commands.HandlerOption[catalogcmd.PreloadCatalogCommand]{}
	invalidateOpts := []commands.HandlerOption[catalogcmd.InvalidateCacheCommand]{}
	resetOpts := []commands.HandlerOption[catalogcmd.ResetStatisticsCommand]{}
	if cfg.Commands.Timeout > 0 {
		preloadOpts = append(preloadOpts, commands.WithTimeout[catalogcmd.PreloadCatalogCommand](cfg.Commands.Timeout))
		invalidateOpts = append(invalidateOpts, commands.WithTimeout[catalogcmd.InvalidateCacheCommand](cfg.Commands.Timeout))
		resetOpts = append(resetOpts, commands.WithTimeout[catalogcmd.ResetStatisticsCommand](cfg.Commands.Timeout))
	}

	c.preloadHandler = catalogcmd.NewPreloadCatalogHandler(c.catalogSvc, logger, gates, cfg.Cache.PreloadDomains, preloadOpts...)
	c.invalidateHandler = catalogcmd.NewInvalidateCacheHandler(c.catalogSvc, logger, gates, invalidateOpts...)
	c.resetHandler = catalogcmd.NewResetStatisticsHandler(c.monitor, logger, gates, resetOpts...)
}

// preloadOnStart eagerly loads configured domains. Failures are logged and
// absorbed; a cold cache is a degraded start, not a failed one.
func (c *Container) preloadOnStart() {
	cfg := c.Config.Cache
	if !cfg.PreloadOnStart || len(cfg.PreloadDomains) == 0 {
		return
	}
	if err := c.catalogSvc.Preload(context.Background(), cfg.PreloadDomains); err != nil {
		logging.CatalogLogger(c.loggerProvider).Warn("catalog preload incomplete",
			"domains", strings.Join(cfg.PreloadDomains, ","),
			"error", err,
		)
	}
}

// LoggerProvider exposes the configured logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Logger returns the root module logger.
func (c *Container) Logger() interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, "")
}

// DocumentSource exposes the configured source chain feeding the catalog.
func (c *Container) DocumentSource() interfaces.DocumentSource {
	return c.source
}

// LocaleResolver exposes the supported-locale matcher.
func (c *Container) LocaleResolver() *locales.Resolver {
	return c.localeResolver
}

// Monitor exposes the statistics monitor shared by every service.
func (c *Container) Monitor() *stats.Monitor {
	return c.monitor
}

// RotationSelector exposes the deterministic daily selector.
func (c *Container) RotationSelector() *rotation.Selector {
	return c.selector
}

// Clock returns the wall clock used for undated rotation lookups.
func (c *Container) Clock() func() time.Time {
	return c.clock
}

// CatalogService returns the configured document cache.
func (c *Container) CatalogService() catalog.Service {
	return c.catalogSvc
}

// ResolverService returns the configured fallback resolver.
func (c *Container) ResolverService() resolver.Service {
	return c.resolverSvc
}

// GuideService returns the configured guide composer.
func (c *Container) GuideService() guides.Service {
	return c.guideSvc
}

// PreloadCatalogHandler returns the preload command handler.
func (c *Container) PreloadCatalogHandler() *catalogcmd.PreloadCatalogHandler {
	return c.preloadHandler
}

// InvalidateCacheHandler returns the cache invalidation command handler.
func (c *Container) InvalidateCacheHandler() *catalogcmd.InvalidateCacheHandler {
	return c.invalidateHandler
}

// ResetStatisticsHandler returns the statistics reset command handler.
func (c *Container) ResetStatisticsHandler() *catalogcmd.ResetStatisticsHandler {
	return c.resetHandler
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "", "info":
		return console.LevelInfo
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
