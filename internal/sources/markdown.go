package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-contentkit/internal/domain"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Markdown serves documents from Markdown files laid out as
// <locale>/<domain>/<file>.md. Each file contributes one entry to the
// document: the frontmatter names the key and the body (or a variants list)
// carries the value. Files flagged as drafts are skipped.
type Markdown struct {
	fsys       fs.FS
	root       string
	pattern    string
	recursive  bool
	renderHTML bool
	engine     goldmark.Markdown
}

// MarkdownOption customizes a Markdown source.
type MarkdownOption func(*Markdown)

// WithMarkdownRoot anchors lookups at a subdirectory of the filesystem.
func WithMarkdownRoot(root string) MarkdownOption {
	return func(s *Markdown) {
		s.root = path.Clean(strings.TrimSpace(root))
	}
}

// WithMarkdownPattern limits discovered files to the supplied glob. The
// default is "*.md".
func WithMarkdownPattern(pattern string) MarkdownOption {
	return func(s *Markdown) {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			s.pattern = trimmed
		}
	}
}

// WithMarkdownRecursive controls whether domain subdirectories are traversed.
func WithMarkdownRecursive(recursive bool) MarkdownOption {
	return func(s *Markdown) {
		s.recursive = recursive
	}
}

// WithMarkdownRenderHTML renders text bodies to HTML instead of returning the
// raw Markdown.
func WithMarkdownRenderHTML(render bool) MarkdownOption {
	return func(s *Markdown) {
		s.renderHTML = render
	}
}

// NewMarkdown builds a Markdown file source over the provided filesystem.
func NewMarkdown(fsys fs.FS, opts ...MarkdownOption) *Markdown {
	source := &Markdown{
		fsys:    fsys,
		root:    ".",
		pattern: "*.md",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(source)
		}
	}
	if source.root == "" {
		source.root = "."
	}
	source.engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return source
}

type markdownFrontMatter struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Slug     string   `yaml:"slug"`
	Variants []string `yaml:"variants"`
	Draft    bool     `yaml:"draft"`
}

// Load walks <locale>/<domain> and assembles a document from its files.
func (s *Markdown) Load(ctx context.Context, domainName, locale string) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := s.documentDir(domainName, locale)
	if err != nil {
		return nil, err
	}

	document := &interfaces.Document{
		Domain: domainName,
		Locale: locale,
		Texts:  map[string]string{},
		Lists:  map[string][]string{},
	}
	shape := domain.ShapeOf(domain.Parse(domainName))

	walkErr := fs.WalkDir(s.fsys, dir, func(filePath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !s.recursive && filePath != dir {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if matched, err := path.Match(s.pattern, path.Base(filePath)); err != nil || !matched {
			return nil
		}
		return s.addEntry(document, shape, domainName, locale, filePath)
	})
	if walkErr != nil {
		var malformed *interfaces.DocumentMalformedError
		if errors.As(walkErr, &malformed) {
			return nil, walkErr
		}
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, fmt.Errorf("sources: walk %s: %w", dir, walkErr)
	}

	return document, nil
}

func (s *Markdown) documentDir(domainName, locale string) (string, error) {
	domainDir := strings.ToLower(strings.TrimSpace(domainName))
	for _, candidate := range localeCandidates(locale) {
		dir := path.Join(s.root, candidate, domainDir)
		info, err := fs.Stat(s.fsys, dir)
		if err == nil && info.IsDir() {
			return dir, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("sources: stat %s: %w", dir, err)
		}
	}
	return "", &interfaces.DocumentNotFoundError{Domain: domainName, Locale: locale}
}

func (s *Markdown) addEntry(document *interfaces.Document, shape domain.Shape, domainName, locale, filePath string) error {
	data, err := fs.ReadFile(s.fsys, filePath)
	if err != nil {
		return fmt.Errorf("sources: read %s: %w", filePath, err)
	}

	var meta markdownFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return &interfaces.DocumentMalformedError{
			Domain: domainName,
			Locale: locale,
			Reason: fmt.Sprintf("parse frontmatter in %s", filePath),
			Cause:  err,
		}
	}
	if meta.Draft {
		return nil
	}

	key, err := entryKey(meta, filePath)
	if err != nil {
		return &interfaces.DocumentMalformedError{
			Domain: domainName,
			Locale: locale,
			Reason: fmt.Sprintf("derive key for %s", filePath),
			Cause:  err,
		}
	}

	if shape == domain.ShapeList {
		variants := meta.Variants
		if len(variants) == 0 {
			variants = bodyLines(body)
		}
		document.Lists[key] = append(document.Lists[key], variants...)
		return nil
	}

	value := strings.TrimSpace(string(body))
	if s.renderHTML && value != "" {
		rendered, err := s.render(body)
		if err != nil {
			return &interfaces.DocumentMalformedError{
				Domain: domainName,
				Locale: locale,
				Reason: fmt.Sprintf("render %s", filePath),
				Cause:  err,
			}
		}
		value = rendered
	}
	document.Texts[key] = value
	return nil
}

// entryKey resolves the document key for a file: explicit key, then slug,
// then a slug of the title, then a slug of the file name.
func entryKey(meta markdownFrontMatter, filePath string) (string, error) {
	if key := strings.TrimSpace(meta.Key); key != "" {
		return key, nil
	}
	if explicit := strings.TrimSpace(meta.Slug); explicit != "" {
		return explicit, nil
	}
	if title := strings.TrimSpace(meta.Title); title != "" {
		return slug.Normalize(title)
	}
	base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	return slug.Normalize(base)
}

func (s *Markdown) render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := s.engine.Convert(body, &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// bodyLines treats each non-empty line of a body as one list variant.
func bodyLines(body []byte) []string {
	lines := strings.Split(string(body), "\n")
	variants := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if trimmed == "" {
			continue
		}
		variants = append(variants, trimmed)
	}
	return variants
}
