package locales_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-contentkit/internal/locales"
)

func newResolver(t *testing.T, supported []string, defaultLocale string) *locales.Resolver {
	t.Helper()
	resolver, err := locales.NewResolver(supported, defaultLocale)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}
	return resolver
}

func TestNewResolverRejectsEmptySupportedSet(t *testing.T) {
	if _, err := locales.NewResolver(nil, "en"); !errors.Is(err, locales.ErrNoSupportedLocales) {
		t.Fatalf("expected ErrNoSupportedLocales, got %v", err)
	}
	if _, err := locales.NewResolver([]string{"", "  "}, "en"); !errors.Is(err, locales.ErrNoSupportedLocales) {
		t.Fatalf("expected ErrNoSupportedLocales for blank entries, got %v", err)
	}
}

func TestNewResolverRejectsUnsupportedDefault(t *testing.T) {
	_, err := locales.NewResolver([]string{"en-US", "es-ES"}, "fr-FR")
	if !errors.Is(err, locales.ErrDefaultLocaleUnsupported) {
		t.Fatalf("expected ErrDefaultLocaleUnsupported, got %v", err)
	}
}

func TestNewResolverDefaultsToFirstEntry(t *testing.T) {
	resolver := newResolver(t, []string{"pt-BR", "en-US"}, "")
	if got := resolver.Default().Code(); got != "pt-BR" {
		t.Fatalf("expected first entry as default, got %s", got)
	}
}

func TestMatchPrefersExactOverLanguage(t *testing.T) {
	resolver := newResolver(t, []string{"en-US", "es-ES", "es-MX"}, "en-US")

	match := resolver.Match("es-MX")
	if match.Tier != locales.MatchExact {
		t.Fatalf("expected exact tier, got %s", match.Tier)
	}
	if got := match.Locale.Code(); got != "es-MX" {
		t.Fatalf("expected es-MX, got %s", got)
	}
}

func TestMatchFallsBackToLanguage(t *testing.T) {
	resolver := newResolver(t, []string{"en-US", "es-ES"}, "en-US")

	match := resolver.Match("es-MX")
	if match.Tier != locales.MatchLanguage {
		t.Fatalf("expected language tier, got %s", match.Tier)
	}
	if got := match.Locale.Code(); got != "es-ES" {
		t.Fatalf("expected es-ES, got %s", got)
	}
	if !match.Supported() {
		t.Fatal("expected language match to count as supported")
	}
}

func TestMatchFallsBackToDefaultForUnsupportedLocale(t *testing.T) {
	resolver := newResolver(t, []string{"en-US", "es-ES"}, "en-US")

	match := resolver.Match("fr-FR")
	if match.Tier != locales.MatchDefault {
		t.Fatalf("expected default tier, got %s", match.Tier)
	}
	if got := match.Locale.Code(); got != "en-US" {
		t.Fatalf("expected en-US, got %s", got)
	}
	if match.Supported() {
		t.Fatal("expected unsupported request to report Supported()==false")
	}
	if match.NoPreference {
		t.Fatal("expected an expressed preference to be reported")
	}
}

func TestMatchReportsNoPreferenceForEmptyRequest(t *testing.T) {
	resolver := newResolver(t, []string{"en-US", "es-ES"}, "en-US")

	match := resolver.Match("   ")
	if !match.NoPreference {
		t.Fatal("expected NoPreference for blank request")
	}
	if got := match.Locale.Code(); got != "en-US" {
		t.Fatalf("expected default locale, got %s", got)
	}
}

func TestMatchIsCaseAndSeparatorInsensitive(t *testing.T) {
	resolver := newResolver(t, []string{"en-US", "es-ES"}, "en-US")

	match := resolver.Match("ES_es")
	if match.Tier != locales.MatchExact {
		t.Fatalf("expected exact tier for normalized input, got %s", match.Tier)
	}
}

func TestResolveReturnsFalseOnlyForAbsentRequest(t *testing.T) {
	resolver := newResolver(t, []string{"en-US"}, "en-US")

	if _, ok := resolver.Resolve(""); ok {
		t.Fatal("expected ok=false for empty request")
	}
	loc, ok := resolver.Resolve("zz-ZZ")
	if !ok {
		t.Fatal("expected ok=true for expressed preference")
	}
	if got := loc.Code(); got != "en-US" {
		t.Fatalf("expected default substitution, got %s", got)
	}
}

func TestSupportedPreservesOrderAndClones(t *testing.T) {
	resolver := newResolver(t, []string{"pt-BR", "en-US", "pt-BR"}, "en-US")

	supported := resolver.Codes()
	if len(supported) != 2 || supported[0] != "pt-BR" || supported[1] != "en-US" {
		t.Fatalf("unexpected supported order: %v", supported)
	}

	clone := resolver.Supported()
	clone[0] = locales.Locale{}
	if got := resolver.Supported()[0].Code(); got != "pt-BR" {
		t.Fatalf("expected internal state to be isolated, got %s", got)
	}
}

func TestIsSupported(t *testing.T) {
	resolver := newResolver(t, []string{"en-US", "es-ES"}, "en-US")

	if !resolver.IsSupported("en_us") {
		t.Fatal("expected en_us to be supported")
	}
	if resolver.IsSupported("es-MX") {
		t.Fatal("expected es-MX to be unsupported at the exact tier")
	}
	if resolver.IsSupported("") {
		t.Fatal("expected empty identifier to be unsupported")
	}
}
