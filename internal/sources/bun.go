package sources

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-contentkit/internal/domain"
	"github.com/goliatone/go-contentkit/internal/identity"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// CatalogEntry is the persisted shape of a single catalog value. Text shaped
// domains keep one row per key; list shaped domains keep one row per variant
// ordered by position.
type CatalogEntry struct {
	bun.BaseModel `bun:"table:catalog_entries,alias:ce"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Domain    string    `bun:"domain,notnull"`
	Locale    string    `bun:"locale,notnull"`
	Key       string    `bun:"key,notnull"`
	Value     string    `bun:"value,notnull"`
	Position  int       `bun:"position,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,nullzero"`
}

// Bun serves documents from a catalog_entries table.
type Bun struct {
	db *bun.DB
}

// NewBun builds a database-backed source.
func NewBun(db *bun.DB) *Bun {
	return &Bun{db: db}
}

// Load selects every entry for the domain and locale and folds the rows into
// a document.
func (s *Bun) Load(ctx context.Context, domainName, locale string) (*interfaces.Document, error) {
	if s.db == nil {
		return nil, errors.New("sources: bun source requires a database")
	}

	var entries []CatalogEntry
	err := s.db.NewSelect().
		Model(&entries).
		Where("lower(ce.domain) = lower(?)", strings.TrimSpace(domainName)).
		Where("lower(ce.locale) = lower(?)", strings.TrimSpace(locale)).
		Order("key ASC").
		Order("position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("sources: load catalog entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, &interfaces.DocumentNotFoundError{Domain: domainName, Locale: locale}
	}

	document := &interfaces.Document{
		Domain: domainName,
		Locale: locale,
		Texts:  map[string]string{},
		Lists:  map[string][]string{},
	}
	shape := domain.ShapeOf(domain.Parse(domainName))

	for _, entry := range entries {
		key := strings.TrimSpace(entry.Key)
		if key == "" {
			continue
		}
		if shape == domain.ShapeList {
			document.Lists[key] = append(document.Lists[key], entry.Value)
			continue
		}
		// Rows arrive ordered by position, lowest wins for text keys.
		if _, exists := document.Texts[key]; !exists {
			document.Texts[key] = entry.Value
		}
	}

	return document, nil
}

// CreateCatalogSchema creates the catalog_entries table and its lookup index.
func CreateCatalogSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return errors.New("sources: create catalog schema requires a database")
	}
	if _, err := db.NewCreateTable().
		Model((*CatalogEntry)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("sources: create catalog_entries: %w", err)
	}
	if _, err := db.NewCreateIndex().
		Model((*CatalogEntry)(nil)).
		IfNotExists().
		Index("catalog_entries_lookup_idx").
		Column("domain", "locale", "key").
		Exec(ctx); err != nil {
		return fmt.Errorf("sources: index catalog_entries: %w", err)
	}
	return nil
}

// SeedCatalogEntries upserts entries, assigning deterministic identifiers to
// rows that do not carry one. Re-seeding the same logical entry updates it in
// place instead of duplicating it.
func SeedCatalogEntries(ctx context.Context, db *bun.DB, entries []CatalogEntry) error {
	if db == nil {
		return errors.New("sources: seed catalog entries requires a database")
	}
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range entries {
		entry := &entries[i]
		if entry.ID == uuid.Nil {
			entry.ID = identity.EntryUUID(entry.Domain, entry.Locale, entry.Key+"#"+strconv.Itoa(entry.Position))
		}
		if entry.UpdatedAt.IsZero() {
			entry.UpdatedAt = now
		}
	}

	if _, err := db.NewInsert().
		Model(&entries).
		On("CONFLICT (id) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("position = EXCLUDED.position").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("sources: seed catalog entries: %w", err)
	}
	return nil
}

// TextEntry builds a row for a text shaped key.
func TextEntry(domainName, locale, key, value string) CatalogEntry {
	return CatalogEntry{
		Domain: domainName,
		Locale: locale,
		Key:    key,
		Value:  value,
	}
}

// ListEntries builds ordered rows for a list shaped key.
func ListEntries(domainName, locale, key string, values []string) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(values))
	for i, value := range values {
		entries = append(entries, CatalogEntry{
			Domain:   domainName,
			Locale:   locale,
			Key:      key,
			Value:    value,
			Position: i,
		})
	}
	return entries
}
