package interfaces

// ErrorKind classifies the non-fatal conditions the engine tallies while
// resolving content.
type ErrorKind string

const (
	// ErrorDocumentNotFound counts source loads that found no document.
	ErrorDocumentNotFound ErrorKind = "document-not-found"
	// ErrorDocumentMalformed counts source loads that could not be decoded.
	ErrorDocumentMalformed ErrorKind = "document-malformed"
	// ErrorKeyMissing counts lookups that fell through every content tier.
	ErrorKeyMissing ErrorKind = "key-missing"
	// ErrorSubstitutionIncomplete counts composed templates that still
	// contained placeholders after parameter substitution.
	ErrorSubstitutionIncomplete ErrorKind = "parameter-substitution-incomplete"
	// ErrorUnsupportedLocale counts requests for locales outside the
	// configured supported set.
	ErrorUnsupportedLocale ErrorKind = "unsupported-locale"
)

// Statistics is a point-in-time snapshot of the engine's error and fallback
// counters. Individual fields are internally consistent but may be mutually
// stale when read under concurrent load.
type Statistics struct {
	TotalErrors     int64                    `json:"total_errors"`
	FallbacksUsed   int64                    `json:"fallbacks_used"`
	ErrorRate       float64                  `json:"error_rate"`
	ErrorsByKind    map[ErrorKind]int64      `json:"errors_by_kind,omitempty"`
	ErrorsByKey     map[string]int64         `json:"errors_by_key,omitempty"`
	FallbacksByTier map[ResolutionTier]int64 `json:"fallbacks_by_tier,omitempty"`
}
