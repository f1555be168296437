package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-contentkit/internal/validation"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// FSJSON serves documents from JSON files laid out as <locale>/<domain>.json
// under a base filesystem. Payloads are validated against the document schema
// before they are handed to the cache, so malformed files fail loudly instead
// of resolving to empty values.
type FSJSON struct {
	fsys fs.FS
	root string
}

// FSJSONOption customizes an FSJSON source.
type FSJSONOption func(*FSJSON)

// WithFSJSONRoot anchors lookups at a subdirectory of the filesystem.
func WithFSJSONRoot(root string) FSJSONOption {
	return func(s *FSJSON) {
		s.root = path.Clean(strings.TrimSpace(root))
	}
}

// NewFSJSON builds a JSON file source over the provided filesystem.
func NewFSJSON(fsys fs.FS, opts ...FSJSONOption) *FSJSON {
	source := &FSJSON{
		fsys: fsys,
		root: ".",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(source)
		}
	}
	if source.root == "" {
		source.root = "."
	}
	return source
}

// Load reads and validates <locale>/<domain>.json.
func (s *FSJSON) Load(ctx context.Context, domainName, locale string) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.readDocument(domainName, locale)
	if err != nil {
		return nil, err
	}

	// Decode generically first so schema issues carry precise locations.
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &interfaces.DocumentMalformedError{
			Domain: domainName,
			Locale: locale,
			Reason: "invalid JSON",
			Cause:  err,
		}
	}
	if err := validation.ValidateDocument(payload); err != nil {
		return nil, &interfaces.DocumentMalformedError{
			Domain: domainName,
			Locale: locale,
			Reason: "schema validation failed",
			Cause:  err,
		}
	}

	var document interfaces.Document
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, &interfaces.DocumentMalformedError{
			Domain: domainName,
			Locale: locale,
			Reason: "decode document",
			Cause:  err,
		}
	}

	// The request identifies the document; file-level fields are advisory.
	document.Domain = domainName
	document.Locale = locale
	return &document, nil
}

func (s *FSJSON) readDocument(domainName, locale string) ([]byte, error) {
	file := strings.ToLower(strings.TrimSpace(domainName)) + ".json"
	for _, candidate := range localeCandidates(locale) {
		name := path.Join(s.root, candidate, file)
		data, err := fs.ReadFile(s.fsys, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("sources: read %s: %w", name, err)
		}
	}
	return nil, &interfaces.DocumentNotFoundError{Domain: domainName, Locale: locale}
}

// localeCandidates lists the directory names tried for a locale. Canonical
// codes keep their region casing on disk, but all-lowercase layouts work too.
func localeCandidates(locale string) []string {
	trimmed := strings.TrimSpace(locale)
	lowered := strings.ToLower(trimmed)
	if lowered == trimmed {
		return []string{trimmed}
	}
	return []string{trimmed, lowered}
}
