package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"time"

	contentkit "github.com/goliatone/go-contentkit"
	"github.com/goliatone/go-contentkit/domain"
	catalogcmd "github.com/goliatone/go-contentkit/internal/commands/catalog"
	"github.com/goliatone/go-contentkit/internal/di"
	"github.com/goliatone/go-contentkit/internal/sources"
)

func main() {
	ctx := context.Background()

	cfg := contentkit.DefaultConfig()
	cfg.DefaultLocale = "en-US"
	cfg.Locales = []string{"en-US", "es-ES"}
	cfg.Features.Commands = true
	cfg.Commands.Enabled = true
	cfg.Cache.PreloadDomains = []string{
		string(domain.DomainCardName),
		string(domain.DomainAffirmation),
	}

	module, err := contentkit.New(cfg,
		di.WithDocumentSource(seedDemoCatalog()),
		di.WithRandom(rand.New(rand.NewSource(42))),
	)
	if err != nil {
		log.Fatalf("initialise contentkit: %v", err)
	}

	if err := module.Container().PreloadCatalogHandler().Execute(ctx, catalogcmd.PreloadCatalogCommand{}); err != nil {
		log.Fatalf("preload catalog: %v", err)
	}

	today := time.Now().UTC()
	week := make([]string, 0, 7)
	for day := 0; day < 7; day++ {
		week = append(week, module.DailyRotatingString(ctx, "affirmation", "daily", today.AddDate(0, 0, day), "en-US"))
	}

	interpretationEN := module.ComposeInterpretation(ctx, contentkit.ComposeRequest{
		Persona:     "sage",
		Topic:       "love",
		Locale:      "en-US",
		SubjectName: "Ana",
		Orientation: "upright",
	})
	interpretationES := module.ComposeInterpretation(ctx, contentkit.ComposeRequest{
		Persona:     "mystic",
		Topic:       "career",
		Locale:      "es-ES",
		SubjectName: "Bruno",
	})

	payload := map[string]any{
		"locales": map[string]any{
			"default":   module.DefaultLocale(),
			"supported": module.Locales(),
		},
		"resolution": map[string]any{
			"exact":         module.ResolveString(ctx, "card-name", "the-fool", "es-ES"),
			"base_language": module.ResolveString(ctx, "card-name", "the-magician", "es-MX"),
			"floor":         module.ResolveString(ctx, "card-name", "the-hanged-man", "en-US"),
			"with_fallback": module.ResolveStringWithFallback(ctx, "ui-label", "retry-button", "en-US", "Try Again"),
			"keywords":      module.ResolveList(ctx, "card-keywords", "the-fool", "en-US"),
			"diagnostic":    module.Resolution(ctx, "card-name", "the-magician", "es-MX"),
		},
		"daily_affirmations": week,
		"interpretations": map[string]any{
			"sage_love_en":     interpretationEN,
			"mystic_career_es": interpretationES,
		},
		"statistics":      module.Statistics(),
		"high_error_rate": module.HighErrorRate(),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

func seedDemoCatalog() *sources.Memory {
	source := sources.NewMemory()

	source.PutTexts("card-name", "en-US", map[string]string{
		"the-fool":     "The Fool",
		"the-magician": "The Magician",
		"the-empress":  "The Empress",
	})
	source.PutTexts("card-name", "es-ES", map[string]string{
		"the-fool":    "El Loco",
		"the-empress": "La Emperatriz",
	})

	source.PutTexts("card-upright-meaning", "en-US", map[string]string{
		"the-fool": "A leap taken in good faith. Beginnings favour the unburdened.",
	})

	source.PutLists("card-keywords", "en-US", map[string][]string{
		"the-fool": {"beginnings", "spontaneity", "trust"},
	})

	source.PutLists("affirmation", "en-US", map[string][]string{
		"daily": {
			"I am grounded",
			"I am open to what arrives",
			"I am enough",
			"I move with intention",
			"I trust the pace of my life",
		},
	})
	source.PutLists("affirmation", "es-ES", map[string][]string{
		"daily": {
			"Estoy centrado",
			"Estoy abierto a lo que llega",
			"Soy suficiente",
			"Me muevo con intencion",
			"Confio en el ritmo de mi vida",
		},
	})

	source.PutLists("guide-template", "en-US", map[string][]string{
		"sage.love.opening":    {"The cards lean toward tenderness, {name}.", "Love asks for patience today, {name}."},
		"sage.love.context":    {"The {orientation} draw colours everything that follows."},
		"sage.love.advice":     {"Speak plainly about what you need."},
		"sage.default.closing": {"Walk gently."},
	})
	source.PutLists("guide-template", "es-ES", map[string][]string{
		"mystic.career.opening": {"Los astros se inclinan hacia el trabajo, {name}."},
		"mystic.career.advice":  {"Guarda tu energia para lo que importa."},
	})

	return source
}
