package di_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	catalogcmd "github.com/goliatone/go-contentkit/internal/commands/catalog"
	"github.com/goliatone/go-contentkit/internal/di"
	"github.com/goliatone/go-contentkit/internal/guides"
	"github.com/goliatone/go-contentkit/internal/runtimeconfig"
	"github.com/goliatone/go-contentkit/internal/sources"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

func testConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = "en-US"
	cfg.Locales = []string{"en-US", "es-ES"}
	return cfg
}

func seededSource() *sources.Memory {
	source := sources.NewMemory()
	source.PutTexts("card-name", "en-US", map[string]string{
		"the-fool": "The Fool",
	})
	source.PutTexts("card-name", "es-ES", map[string]string{
		"the-fool": "El Loco",
	})
	source.PutLists("affirmation", "en-US", map[string][]string{
		"daily": {"I am grounded", "I am open", "I am enough"},
	})
	return source
}

func TestNewContainerRejectsInvalidConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Locales = nil

	container, err := di.NewContainer(cfg)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.Is(err, runtimeconfig.ErrSupportedLocalesRequired) {
		t.Fatalf("expected ErrSupportedLocalesRequired, got %v", err)
	}
	if container != nil {
		t.Fatal("expected nil container on configuration error")
	}
}

func TestNewContainerRejectsInvalidRotationEpoch(t *testing.T) {
	cfg := testConfig()
	cfg.Rotation.Epoch = "January 1st"

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrRotationEpochInvalid) {
		t.Fatalf("expected ErrRotationEpochInvalid, got %v", err)
	}
}

func TestNewContainerBuildsDefaultServices(t *testing.T) {
	container, err := di.NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if container.CatalogService() == nil {
		t.Fatal("expected catalog service")
	}
	if container.ResolverService() == nil {
		t.Fatal("expected resolver service")
	}
	if container.GuideService() == nil {
		t.Fatal("expected guide service")
	}
	if container.LocaleResolver() == nil {
		t.Fatal("expected locale resolver")
	}
	if container.Monitor() == nil {
		t.Fatal("expected statistics monitor")
	}
	if container.RotationSelector() == nil {
		t.Fatal("expected rotation selector")
	}
	if container.DocumentSource() == nil {
		t.Fatal("expected document source")
	}
	if container.LoggerProvider() == nil {
		t.Fatal("expected logger provider")
	}
	if container.PreloadCatalogHandler() == nil || container.InvalidateCacheHandler() == nil || container.ResetStatisticsHandler() == nil {
		t.Fatal("expected command handlers")
	}
}

func TestNewContainerResolvesThroughInjectedSource(t *testing.T) {
	container, err := di.NewContainer(testConfig(), di.WithDocumentSource(seededSource()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	resolution := container.ResolverService().ResolveString(context.Background(), "card-name", "the-fool", "es-ES")
	if resolution.Value != "El Loco" {
		t.Fatalf("expected El Loco, got %q", resolution.Value)
	}
	if resolution.Tier != interfaces.TierPrimaryLocale {
		t.Fatalf("expected primary locale tier, got %v", resolution.Tier)
	}
}

func TestNewContainerPreloadsOnStart(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.PreloadOnStart = true
	cfg.Cache.PreloadDomains = []string{"card-name"}

	container, err := di.NewContainer(cfg, di.WithDocumentSource(seededSource()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if cached := container.CatalogService().CachedDocuments(); cached != 2 {
		t.Fatalf("expected card-name cached for both locales, got %d documents", cached)
	}
}

func TestNewContainerPreloadSurvivesMissingDocuments(t *testing.T) {
	source := sources.NewMemory()
	source.PutTexts("card-name", "en-US", map[string]string{"the-fool": "The Fool"})

	cfg := testConfig()
	cfg.Cache.PreloadOnStart = true
	cfg.Cache.PreloadDomains = []string{"card-name", "affirmation"}

	container, err := di.NewContainer(cfg, di.WithDocumentSource(source))
	if err != nil {
		t.Fatalf("expected best-effort preload, got error: %v", err)
	}

	if cached := container.CatalogService().CachedDocuments(); cached != 1 {
		t.Fatalf("expected only the seeded document cached, got %d", cached)
	}
	if container.Monitor().TotalErrors() == 0 {
		t.Fatal("expected missing preload documents to be recorded")
	}
}

func TestNewContainerHonorsClockOverride(t *testing.T) {
	fixed := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	container, err := di.NewContainer(testConfig(), di.WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if got := container.Clock()(); !got.Equal(fixed) {
		t.Fatalf("expected fixed clock, got %v", got)
	}
}

func TestNewContainerSeedsGuideComposerRandom(t *testing.T) {
	templates := func() *sources.Memory {
		source := sources.NewMemory()
		source.PutLists("guide-template", "en-US", map[string][]string{
			"sage.general.opening": {"First opening.", "Second opening.", "Third opening."},
			"sage.general.advice":  {"First advice.", "Second advice.", "Third advice."},
		})
		return source
	}

	compose := func(t *testing.T) []string {
		t.Helper()
		container, err := di.NewContainer(
			testConfig(),
			di.WithDocumentSource(templates()),
			di.WithRandom(rand.New(rand.NewSource(7))),
		)
		if err != nil {
			t.Fatalf("NewContainer returned error: %v", err)
		}
		out := make([]string, 0, 5)
		for i := 0; i < 5; i++ {
			out = append(out, container.GuideService().Compose(context.Background(), guides.ComposeRequest{}))
		}
		return out
	}

	first := compose(t)
	second := compose(t)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("composition %d diverged with identical seeds:\n%q\n%q", i, first[i], second[i])
		}
	}
}

func TestContainerCommandHandlersDriveCatalog(t *testing.T) {
	cfg := testConfig()
	cfg.Features.Commands = true
	cfg.Commands.Enabled = true

	container, err := di.NewContainer(cfg, di.WithDocumentSource(seededSource()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	ctx := context.Background()
	if err := container.PreloadCatalogHandler().Execute(ctx, catalogcmd.PreloadCatalogCommand{Domains: []string{"card-name"}}); err != nil {
		t.Fatalf("preload command failed: %v", err)
	}
	if cached := container.CatalogService().CachedDocuments(); cached == 0 {
		t.Fatal("expected preload command to populate the catalog")
	}

	if err := container.InvalidateCacheHandler().Execute(ctx, catalogcmd.InvalidateCacheCommand{}); err != nil {
		t.Fatalf("invalidate command failed: %v", err)
	}
	if cached := container.CatalogService().CachedDocuments(); cached != 0 {
		t.Fatalf("expected empty catalog after invalidation, got %d documents", cached)
	}
}

func TestContainerCommandsGateClosedByDefault(t *testing.T) {
	container, err := di.NewContainer(testConfig(), di.WithDocumentSource(seededSource()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	err = container.PreloadCatalogHandler().Execute(context.Background(), catalogcmd.PreloadCatalogCommand{Domains: []string{"card-name"}})
	if !errors.Is(err, catalogcmd.ErrCommandsFeatureDisabled) {
		t.Fatalf("expected the command feature gate to reject execution, got %v", err)
	}
}
