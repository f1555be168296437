package sources

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Memory is a seedable in-memory document source for tests, fixtures, and
// demos. Documents are cloned on write and on read so callers never share
// state with the source.
type Memory struct {
	mu        sync.RWMutex
	documents map[string]*interfaces.Document
}

// NewMemory creates an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{
		documents: make(map[string]*interfaces.Document),
	}
}

// Put stores a document for a (domain, locale) pair, replacing any previous
// payload.
func (m *Memory) Put(domain, locale string, document *interfaces.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneDocument(document)
	copied.Domain = strings.TrimSpace(domain)
	copied.Locale = strings.TrimSpace(locale)
	m.documents[memoryKey(domain, locale)] = copied
}

// PutTexts seeds a text-shaped document.
func (m *Memory) PutTexts(domain, locale string, texts map[string]string) {
	m.Put(domain, locale, &interfaces.Document{Texts: texts})
}

// PutLists seeds a list-shaped document.
func (m *Memory) PutLists(domain, locale string, lists map[string][]string) {
	m.Put(domain, locale, &interfaces.Document{Lists: lists})
}

// Remove drops the document for a (domain, locale) pair.
func (m *Memory) Remove(domain, locale string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.documents, memoryKey(domain, locale))
}

// Load implements interfaces.DocumentSource.
func (m *Memory) Load(_ context.Context, domain, locale string) (*interfaces.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	document, ok := m.documents[memoryKey(domain, locale)]
	if !ok {
		return nil, &interfaces.DocumentNotFoundError{Domain: domain, Locale: locale}
	}
	return cloneDocument(document), nil
}

func memoryKey(domain, locale string) string {
	return strings.ToLower(strings.TrimSpace(domain)) + "|" + strings.ToLower(strings.TrimSpace(locale))
}

func cloneDocument(document *interfaces.Document) *interfaces.Document {
	if document == nil {
		return &interfaces.Document{}
	}

	copied := &interfaces.Document{
		Domain: document.Domain,
		Locale: document.Locale,
	}
	if len(document.Texts) > 0 {
		copied.Texts = make(map[string]string, len(document.Texts))
		for key, value := range document.Texts {
			copied.Texts[key] = value
		}
	}
	if len(document.Lists) > 0 {
		copied.Lists = make(map[string][]string, len(document.Lists))
		for key, values := range document.Lists {
			cloned := make([]string, len(values))
			copy(cloned, values)
			copied.Lists[key] = cloned
		}
	}
	return copied
}
