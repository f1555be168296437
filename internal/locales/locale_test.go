package locales_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-contentkit/internal/locales"
)

func TestParseNormalizesSeparatorsAndCase(t *testing.T) {
	cases := []struct {
		input    string
		code     string
		language string
		region   string
	}{
		{"en", "en", "en", ""},
		{"en-US", "en-US", "en", "US"},
		{"en_us", "en-US", "en", "US"},
		{"ES-mx", "es-MX", "es", "MX"},
		{"  pt-BR  ", "pt-BR", "pt", "BR"},
		{"es-419", "es-419", "es", "419"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			loc, err := locales.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if loc.Code() != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, loc.Code())
			}
			if loc.Language() != tc.language {
				t.Fatalf("expected language %q, got %q", tc.language, loc.Language())
			}
			if loc.Region() != tc.region {
				t.Fatalf("expected region %q, got %q", tc.region, loc.Region())
			}
		})
	}
}

func TestParseDoesNotInventRegions(t *testing.T) {
	loc, err := locales.Parse("es")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if loc.Region() != "" {
		t.Fatalf("expected language-level locale, got region %q", loc.Region())
	}
}

func TestParseRejectsEmptyAndGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "!!", "9x"} {
		if _, err := locales.Parse(input); !errors.Is(err, locales.ErrLocaleInvalid) {
			t.Fatalf("Parse(%q): expected ErrLocaleInvalid, got %v", input, err)
		}
	}
}

func TestLocaleEquality(t *testing.T) {
	a, _ := locales.Parse("es-MX")
	b, _ := locales.Parse("es_mx")
	c, _ := locales.Parse("es-ES")

	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %v to differ from %v", a, c)
	}
	if !a.SameLanguage(c) {
		t.Fatalf("expected %v and %v to share a language", a, c)
	}
}
