package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by entity type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentUUID identifies a catalog document by domain and locale.
func DocumentUUID(domain, locale string) uuid.UUID {
	return UUID("contentkit:document:" + normalizeToken(domain) + ":" + normalizeToken(locale))
}

// EntryUUID identifies a single catalog entry within a document.
func EntryUUID(domain, locale, key string) uuid.UUID {
	return UUID("contentkit:entry:" + normalizeToken(domain) + ":" + normalizeToken(locale) + ":" + strings.TrimSpace(key))
}

// LocaleUUID identifies a supported locale.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("contentkit:locale:" + normalizeToken(localeCode))
}

// TemplateUUID identifies a guide template variant list.
func TemplateUUID(persona, topic, slot string) uuid.UUID {
	return UUID("contentkit:template:" + normalizeToken(persona) + ":" + normalizeToken(topic) + ":" + normalizeToken(slot))
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
