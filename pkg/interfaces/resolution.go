package interfaces

// ResolutionTier identifies which rung of the fallback chain produced a
// resolved value.
type ResolutionTier string

const (
	// TierPrimaryLocale means the value came from the resolved locale's own
	// document.
	TierPrimaryLocale ResolutionTier = "primary-locale"
	// TierBaseLanguage means the value came from the default locale's
	// document after the primary lookup missed.
	TierBaseLanguage ResolutionTier = "base-language"
	// TierCustomFallback means the caller-supplied fallback string was used.
	TierCustomFallback ResolutionTier = "custom-fallback"
	// TierFormattedKey means no content existed anywhere and the key itself
	// was formatted into a display string.
	TierFormattedKey ResolutionTier = "formatted-key"
	// TierNone marks list resolutions that found nothing; there is no floor
	// value for lists.
	TierNone ResolutionTier = "none"
)

// Resolution describes how a single string lookup was satisfied. Values are
// transient: they exist for logging and diagnostics, never persisted.
type Resolution struct {
	Value           string         `json:"value"`
	Tier            ResolutionTier `json:"tier"`
	Domain          string         `json:"domain"`
	Key             string         `json:"key"`
	RequestedLocale string         `json:"requested_locale"`
	ResolvedLocale  string         `json:"resolved_locale"`
	FallbackUsed    bool           `json:"fallback_used"`
}
