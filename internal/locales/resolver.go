package locales

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSupportedLocales rejects resolver construction without at least one
// usable supported locale. An engine without locales cannot resolve anything,
// so this fails loudly instead of degrading.
var ErrNoSupportedLocales = errors.New("locales: at least one supported locale is required")

// ErrDefaultLocaleUnsupported rejects a default locale missing from the
// supported set.
var ErrDefaultLocaleUnsupported = errors.New("locales: default locale is not in the supported set")

// MatchTier identifies how a requested locale was mapped onto the supported
// set.
type MatchTier string

const (
	// MatchExact means language and region both matched a supported locale.
	MatchExact MatchTier = "exact"
	// MatchLanguage means only the language subtag matched; the first
	// supported locale for that language was chosen.
	MatchLanguage MatchTier = "language"
	// MatchDefault means the request was absent, unparsable, or entirely
	// outside the supported set, and the default locale was substituted.
	MatchDefault MatchTier = "default"
)

// Match describes one resolution of a requested locale. Locale is always a
// member of the supported set.
type Match struct {
	Locale       Locale
	Requested    string
	Tier         MatchTier
	NoPreference bool
}

// Supported reports whether the request itself matched the supported set,
// exactly or by language. Default substitutions for expressed preferences
// count as unsupported requests.
func (m Match) Supported() bool {
	return m.Tier == MatchExact || m.Tier == MatchLanguage
}

// Resolver maps requested locales onto a fixed, ordered supported set. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	supported     []Locale
	defaultLocale Locale
	exact         map[string]Locale
	byLanguage    map[string]Locale
}

// NewResolver builds a resolver over the supported identifiers, preserving
// their configured order. Duplicates keep their first position. An empty
// defaultLocale selects the first supported entry.
func NewResolver(supported []string, defaultLocale string) (*Resolver, error) {
	resolver := &Resolver{
		exact:      map[string]Locale{},
		byLanguage: map[string]Locale{},
	}

	for _, raw := range supported {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		loc, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(loc.Code())
		if _, seen := resolver.exact[key]; seen {
			continue
		}
		resolver.exact[key] = loc
		if _, seen := resolver.byLanguage[loc.Language()]; !seen {
			resolver.byLanguage[loc.Language()] = loc
		}
		resolver.supported = append(resolver.supported, loc)
	}

	if len(resolver.supported) == 0 {
		return nil, ErrNoSupportedLocales
	}

	resolver.defaultLocale = resolver.supported[0]
	if strings.TrimSpace(defaultLocale) != "" {
		loc, err := Parse(defaultLocale)
		if err != nil {
			return nil, err
		}
		found, ok := resolver.exact[strings.ToLower(loc.Code())]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, loc.Code())
		}
		resolver.defaultLocale = found
	}

	return resolver, nil
}

// Match resolves a requested locale against the supported set. The operation
// is total: every input maps to a supported locale. An empty request is
// reported as NoPreference with the default locale substituted.
func (r *Resolver) Match(requested string) Match {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		return Match{
			Locale:       r.defaultLocale,
			Requested:    requested,
			Tier:         MatchDefault,
			NoPreference: true,
		}
	}

	loc, err := Parse(trimmed)
	if err != nil {
		return Match{Locale: r.defaultLocale, Requested: trimmed, Tier: MatchDefault}
	}

	if found, ok := r.exact[strings.ToLower(loc.Code())]; ok {
		return Match{Locale: found, Requested: trimmed, Tier: MatchExact}
	}
	if found, ok := r.byLanguage[loc.Language()]; ok {
		return Match{Locale: found, Requested: trimmed, Tier: MatchLanguage}
	}
	return Match{Locale: r.defaultLocale, Requested: trimmed, Tier: MatchDefault}
}

// Resolve returns the supported locale for a request, or ok=false when the
// caller expressed no preference at all.
func (r *Resolver) Resolve(requested string) (Locale, bool) {
	if strings.TrimSpace(requested) == "" {
		return Locale{}, false
	}
	return r.Match(requested).Locale, true
}

// Default returns the configured default locale.
func (r *Resolver) Default() Locale { return r.defaultLocale }

// Supported returns the supported locales in configuration order.
func (r *Resolver) Supported() []Locale {
	out := make([]Locale, len(r.supported))
	copy(out, r.supported)
	return out
}

// Codes returns the supported locale identifiers in configuration order.
func (r *Resolver) Codes() []string {
	out := make([]string, 0, len(r.supported))
	for _, loc := range r.supported {
		out = append(out, loc.Code())
	}
	return out
}

// IsSupported reports whether an identifier matches the supported set
// exactly.
func (r *Resolver) IsSupported(code string) bool {
	loc, err := Parse(code)
	if err != nil {
		return false
	}
	_, ok := r.exact[strings.ToLower(loc.Code())]
	return ok
}
