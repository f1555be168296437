package sources_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-contentkit/internal/sources"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

func newContentFS(t *testing.T, opts ...sources.MarkdownOption) *sources.Markdown {
	t.Helper()
	return sources.NewMarkdown(os.DirFS("testdata/content"), opts...)
}

func TestMarkdownBuildsListDocument(t *testing.T) {
	source := newContentFS(t)

	document, err := source.Load(context.Background(), "journal-prompt", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	variants, ok := document.List("reflection")
	if !ok || len(variants) != 2 {
		t.Fatalf("List(reflection) = %v, %v", variants, ok)
	}
	if variants[0] != "What lesson kept returning this week?" {
		t.Fatalf("unexpected first variant %q", variants[0])
	}

	// The gratitude file has no variants list, so body lines become variants
	// and the key derives from the title.
	lines, ok := document.List("gratitude")
	if !ok || len(lines) != 2 {
		t.Fatalf("List(gratitude) = %v, %v", lines, ok)
	}
	if lines[0] != "Name one small kindness you received today." {
		t.Fatalf("expected bullet prefix to be stripped, got %q", lines[0])
	}
}

func TestMarkdownBuildsTextDocument(t *testing.T) {
	source := newContentFS(t)

	document, err := source.Load(context.Background(), "card-upright-meaning", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	value, ok := document.Text("the-fool")
	if !ok {
		t.Fatal("expected the-fool entry")
	}
	if !strings.HasPrefix(value, "A leap taken in good faith.") {
		t.Fatalf("expected raw body, got %q", value)
	}
	if strings.Contains(value, "<strong>") {
		t.Fatalf("expected unrendered Markdown by default, got %q", value)
	}
}

func TestMarkdownSkipsDrafts(t *testing.T) {
	source := newContentFS(t)

	document, err := source.Load(context.Background(), "card-upright-meaning", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if _, ok := document.Text("editor-notes"); ok {
		t.Fatal("expected draft file to be skipped")
	}
}

func TestMarkdownIgnoresSubdirectoriesByDefault(t *testing.T) {
	source := newContentFS(t)

	document, err := source.Load(context.Background(), "card-upright-meaning", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if _, ok := document.Text("the-fool-archived"); ok {
		t.Fatal("expected nested file to be excluded without the recursive option")
	}
}

func TestMarkdownRecursiveWalk(t *testing.T) {
	source := newContentFS(t, sources.WithMarkdownRecursive(true))

	document, err := source.Load(context.Background(), "card-upright-meaning", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if _, ok := document.Text("the-fool-archived"); !ok {
		t.Fatal("expected nested file with the recursive option")
	}
}

func TestMarkdownRendersHTMLWhenEnabled(t *testing.T) {
	source := newContentFS(t, sources.WithMarkdownRenderHTML(true))

	document, err := source.Load(context.Background(), "card-upright-meaning", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	value, ok := document.Text("the-fool")
	if !ok {
		t.Fatal("expected the-fool entry")
	}
	if !strings.Contains(value, "<strong>Trust</strong>") {
		t.Fatalf("expected rendered emphasis, got %q", value)
	}
}

func TestMarkdownDerivesKeyFromFileName(t *testing.T) {
	source := newContentFS(t)

	document, err := source.Load(context.Background(), "ui-label", "en-US")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got, ok := document.Text("welcome-message"); !ok || got != "Welcome back" {
		t.Fatalf("Text(welcome-message) = %q, %v", got, ok)
	}
}

func TestMarkdownReportsMalformedFrontmatter(t *testing.T) {
	source := newContentFS(t)

	_, err := source.Load(context.Background(), "affirmation", "en-US")
	if !errors.Is(err, interfaces.ErrDocumentMalformed) {
		t.Fatalf("expected ErrDocumentMalformed, got %v", err)
	}

	var malformed *interfaces.DocumentMalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected DocumentMalformedError, got %T", err)
	}
	if !strings.Contains(malformed.Reason, "broken.md") {
		t.Fatalf("expected the file path in the reason, got %q", malformed.Reason)
	}
}

func TestMarkdownMissReturnsNotFound(t *testing.T) {
	source := newContentFS(t)

	if _, err := source.Load(context.Background(), "card-name", "en-US"); !errors.Is(err, interfaces.ErrDocumentNotFound) {
		t.Fatalf("expected missing domain directory to miss, got %v", err)
	}
	if _, err := source.Load(context.Background(), "journal-prompt", "fr-FR"); !errors.Is(err, interfaces.ErrDocumentNotFound) {
		t.Fatalf("expected missing locale directory to miss, got %v", err)
	}
}
