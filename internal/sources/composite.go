package sources

import (
	"context"
	"errors"

	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Composite consults sources in order and serves the first document found.
// Not-found misses fall through to the next source; any other failure stops
// the chain so malformed content is reported instead of silently shadowed.
type Composite struct {
	sources []interfaces.DocumentSource
}

// NewComposite layers the provided sources, highest priority first.
func NewComposite(sources ...interfaces.DocumentSource) *Composite {
	layered := make([]interfaces.DocumentSource, 0, len(sources))
	for _, source := range sources {
		if source != nil {
			layered = append(layered, source)
		}
	}
	return &Composite{sources: layered}
}

// Load returns the first document any layer can produce.
func (s *Composite) Load(ctx context.Context, domainName, locale string) (*interfaces.Document, error) {
	for _, source := range s.sources {
		document, err := source.Load(ctx, domainName, locale)
		if err == nil {
			return document, nil
		}
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			continue
		}
		return nil, err
	}
	return nil, &interfaces.DocumentNotFoundError{Domain: domainName, Locale: locale}
}
