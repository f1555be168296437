package catalogcmd

import (
	"testing"
)

func TestPreloadCatalogCommandValidation(t *testing.T) {
	cases := []struct {
		name    string
		domains []string
		wantErr bool
	}{
		{name: "empty set defers to configuration", domains: nil},
		{name: "known domains pass", domains: []string{"card-name", "affirmation"}},
		{name: "case and padding are tolerated", domains: []string{" Card-Name "}},
		{name: "unknown domain fails", domains: []string{"horoscope"}, wantErr: true},
		{name: "blank domain fails", domains: []string{"  "}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := PreloadCatalogCommand{Domains: tc.domains}.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected valid command, got %v", err)
			}
		})
	}
}

func TestInvalidateCacheCommandAlwaysValid(t *testing.T) {
	if err := (InvalidateCacheCommand{}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
}

func TestResetStatisticsCommandRequiresConfirmation(t *testing.T) {
	if err := (ResetStatisticsCommand{}).Validate(); err == nil {
		t.Fatal("expected unconfirmed reset to fail validation")
	}
	if err := (ResetStatisticsCommand{Confirm: true}).Validate(); err != nil {
		t.Fatalf("expected confirmed reset to validate, got %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (PreloadCatalogCommand{}).Type(); got != "contentkit.catalog.preload" {
		t.Fatalf("unexpected preload type %q", got)
	}
	if got := (InvalidateCacheCommand{}).Type(); got != "contentkit.catalog.invalidate" {
		t.Fatalf("unexpected invalidate type %q", got)
	}
	if got := (ResetStatisticsCommand{}).Type(); got != "contentkit.stats.reset" {
		t.Fatalf("unexpected reset type %q", got)
	}
}
