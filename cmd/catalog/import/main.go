package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-contentkit/domain"
	"github.com/goliatone/go-contentkit/internal/sources"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

func main() {
	if err := runImport(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("catalog import: %v", err)
	}
}

func runImport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("catalog-import", flag.ContinueOnError)
	fs.SetOutput(out)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	dsn := fs.String("db", "", "SQLite DSN the catalog entries are written to")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	renderHTML := fs.Bool("render-html", false, "Render text bodies to HTML before persisting")
	dryRun := fs.Bool("dry-run", false, "Preview discovered entries without writing the database")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*dryRun && *dsn == "" {
		return fmt.Errorf("db is required unless -dry-run is set")
	}

	pairs, err := discoverDocuments(*contentDir)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no locale/domain directories found under %s", *contentDir)
	}

	source := sources.NewMarkdown(os.DirFS(*contentDir),
		sources.WithMarkdownPattern(*pattern),
		sources.WithMarkdownRecursive(true),
		sources.WithMarkdownRenderHTML(*renderHTML),
	)

	ctx := context.Background()
	var entries []sources.CatalogEntry
	documents := 0
	failed := 0

	for _, pair := range pairs {
		document, err := source.Load(ctx, pair.domain, pair.locale)
		if err != nil {
			if errors.Is(err, interfaces.ErrDocumentNotFound) {
				continue
			}
			failed++
			fmt.Fprintf(out, "%s/%s: %v\n", pair.locale, pair.domain, err)
			continue
		}
		if document.Empty() {
			continue
		}
		rows := documentEntries(document)
		entries = append(entries, rows...)
		documents++
		fmt.Fprintf(out, "%s/%s: %d entries\n", pair.locale, pair.domain, len(rows))
	}

	if failed > 0 {
		return fmt.Errorf("%d documents failed to load", failed)
	}
	if documents == 0 {
		return fmt.Errorf("no documents matched %q under %s", *pattern, *contentDir)
	}

	if *dryRun {
		fmt.Fprintf(out, "dry run: %d entries from %d documents\n", len(entries), documents)
		return nil
	}

	sqldb, err := sql.Open("sqlite3", *dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := sources.CreateCatalogSchema(ctx, db); err != nil {
		return err
	}
	if err := sources.SeedCatalogEntries(ctx, db, entries); err != nil {
		return err
	}

	fmt.Fprintf(out, "imported %d entries from %d documents\n", len(entries), documents)
	return nil
}

type documentRef struct {
	locale string
	domain string
}

// discoverDocuments lists <locale>/<domain> directory pairs under root,
// keeping only known domains.
func discoverDocuments(root string) ([]documentRef, error) {
	localeDirs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var pairs []documentRef
	for _, localeDir := range localeDirs {
		if !localeDir.IsDir() {
			continue
		}
		domainDirs, err := os.ReadDir(filepath.Join(root, localeDir.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale dir %s: %w", localeDir.Name(), err)
		}
		for _, domainDir := range domainDirs {
			if !domainDir.IsDir() {
				continue
			}
			name := domain.Parse(domainDir.Name())
			if !domain.IsKnown(name) {
				continue
			}
			pairs = append(pairs, documentRef{locale: localeDir.Name(), domain: string(name)})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].locale != pairs[j].locale {
			return pairs[i].locale < pairs[j].locale
		}
		return pairs[i].domain < pairs[j].domain
	})
	return pairs, nil
}

// documentEntries flattens a document into catalog rows, keys sorted so a
// repeated import walks the same order.
func documentEntries(document *interfaces.Document) []sources.CatalogEntry {
	var entries []sources.CatalogEntry

	textKeys := make([]string, 0, len(document.Texts))
	for key := range document.Texts {
		textKeys = append(textKeys, key)
	}
	sort.Strings(textKeys)
	for _, key := range textKeys {
		entries = append(entries, sources.TextEntry(document.Domain, document.Locale, key, document.Texts[key]))
	}

	listKeys := make([]string, 0, len(document.Lists))
	for key := range document.Lists {
		listKeys = append(listKeys, key)
	}
	sort.Strings(listKeys)
	for _, key := range listKeys {
		entries = append(entries, sources.ListEntries(document.Domain, document.Locale, key, document.Lists[key])...)
	}

	return entries
}
