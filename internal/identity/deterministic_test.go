package identity_test

import (
	"testing"

	"github.com/goliatone/go-contentkit/internal/identity"
	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := identity.UUID("contentkit:document:card-name:en-US")
	second := identity.UUID("contentkit:document:card-name:en-US")
	if first != second {
		t.Fatalf("expected stable UUID, got %s and %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("expected non-nil UUID for non-empty key")
	}
}

func TestUUIDBlankKeyIsNil(t *testing.T) {
	if got := identity.UUID("   "); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for blank key, got %s", got)
	}
}

func TestEntryUUIDSeparatesEntities(t *testing.T) {
	document := identity.DocumentUUID("card-name", "en-US")
	entry := identity.EntryUUID("card-name", "en-US", "the-fool")
	if document == entry {
		t.Fatal("expected document and entry identities to differ")
	}

	other := identity.EntryUUID("card-name", "en-US", "the-magician")
	if entry == other {
		t.Fatal("expected distinct keys to produce distinct identities")
	}
}

func TestDocumentUUIDNormalizesCase(t *testing.T) {
	lower := identity.DocumentUUID("card-name", "en-us")
	upper := identity.DocumentUUID("CARD-NAME", "EN-US")
	if lower != upper {
		t.Fatalf("expected case-insensitive identity, got %s and %s", lower, upper)
	}
}

func TestLocaleUUIDNormalizesInput(t *testing.T) {
	if identity.LocaleUUID(" en-US ") != identity.LocaleUUID("en-us") {
		t.Fatal("expected locale identity to ignore case and padding")
	}
}

func TestTemplateUUIDIncludesAllTokens(t *testing.T) {
	base := identity.TemplateUUID("sage", "love", "opening")
	if base == identity.TemplateUUID("sage", "love", "closing") {
		t.Fatal("expected slot to influence template identity")
	}
	if base == identity.TemplateUUID("sage", "career", "opening") {
		t.Fatal("expected topic to influence template identity")
	}
	if base == identity.TemplateUUID("mystic", "love", "opening") {
		t.Fatal("expected persona to influence template identity")
	}
}
