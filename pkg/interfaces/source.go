package interfaces

import (
	"context"
	"errors"
	"fmt"
)

// ErrDocumentNotFound is returned when a source has no document for a
// (domain, locale) pair. Absence is an expected condition for sparsely
// translated catalogs and is never fatal to resolution.
var ErrDocumentNotFound = errors.New("document not found")

// ErrDocumentMalformed is returned when a source located a document but could
// not decode it into the catalog shape.
var ErrDocumentMalformed = errors.New("document malformed")

// Document is one locale's content payload for a single domain. Text domains
// populate Texts, list domains populate Lists. Instances handed to the cache
// are treated as immutable; a reload replaces the whole document.
type Document struct {
	Domain string              `json:"domain"`
	Locale string              `json:"locale"`
	Texts  map[string]string   `json:"texts,omitempty"`
	Lists  map[string][]string `json:"lists,omitempty"`
}

// Text returns the value for key. Empty string values count as absent so a
// half-translated document falls through to the next resolution tier.
func (d *Document) Text(key string) (string, bool) {
	if d == nil || d.Texts == nil {
		return "", false
	}
	value, ok := d.Texts[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// List returns the entries for key. Empty lists count as absent.
func (d *Document) List(key string) ([]string, bool) {
	if d == nil || d.Lists == nil {
		return nil, false
	}
	values, ok := d.Lists[key]
	if !ok || len(values) == 0 {
		return nil, false
	}
	return values, true
}

// Empty reports whether the document carries no content at all.
func (d *Document) Empty() bool {
	return d == nil || (len(d.Texts) == 0 && len(d.Lists) == 0)
}

// DocumentSource loads content documents from a backing store: an embedded
// filesystem, a content directory, a database, or a remote service. Load is
// invoked once per (domain, locale) miss; concurrent identical requests are
// coalesced by the caller. Implementations signal absence with
// *DocumentNotFoundError and undecodable payloads with
// *DocumentMalformedError so the cache can classify failures.
type DocumentSource interface {
	Load(ctx context.Context, domain, locale string) (*Document, error)
}

// DocumentNotFoundError reports a missing document for a (domain, locale)
// pair. It unwraps to ErrDocumentNotFound.
type DocumentNotFoundError struct {
	Domain string
	Locale string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s/%s", e.Domain, e.Locale)
}

func (e *DocumentNotFoundError) Unwrap() error { return ErrDocumentNotFound }

// DocumentMalformedError reports a document that exists but could not be
// decoded or failed shape validation. It unwraps to ErrDocumentMalformed and
// to the underlying cause when one is present.
type DocumentMalformedError struct {
	Domain string
	Locale string
	Reason string
	Cause  error
}

func (e *DocumentMalformedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("document malformed: %s/%s: %s", e.Domain, e.Locale, e.Reason)
	}
	return fmt.Sprintf("document malformed: %s/%s", e.Domain, e.Locale)
}

func (e *DocumentMalformedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrDocumentMalformed, e.Cause}
	}
	return []error{ErrDocumentMalformed}
}
