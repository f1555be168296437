package locales

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrLocaleInvalid is returned when an identifier cannot be interpreted as a
// locale.
var ErrLocaleInvalid = errors.New("locales: locale identifier is invalid")

// Locale is an immutable language plus optional region pair, such as "en" or
// "es-MX". The zero value means "no locale".
type Locale struct {
	language string
	region   string
}

// Parse interprets a BCP 47 style identifier. Underscore separators and mixed
// casing are tolerated ("es_mx" parses the same as "es-MX"). Regions are only
// retained when the input spelled one out; inferred regions are dropped so
// "es" stays a language-level locale.
func Parse(input string) (Locale, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Locale{}, ErrLocaleInvalid
	}

	normalized := strings.ReplaceAll(trimmed, "_", "-")
	if tag, err := language.Parse(normalized); err == nil {
		base, baseConf := tag.Base()
		if baseConf >= language.High {
			loc := Locale{language: base.String()}
			if region, conf := tag.Region(); conf == language.Exact {
				loc.region = region.String()
			}
			return loc, nil
		}
	}

	return parseLoose(trimmed, normalized)
}

// parseLoose covers identifiers the BCP 47 parser rejects but that appear in
// real catalogs, such as uppercase language codes or bare custom tags.
func parseLoose(original, normalized string) (Locale, error) {
	segments := strings.Split(normalized, "-")
	lang := strings.ToLower(strings.TrimSpace(segments[0]))
	if !isAlpha(lang) || len(lang) < 2 || len(lang) > 8 {
		return Locale{}, fmt.Errorf("%w: %s", ErrLocaleInvalid, original)
	}
	loc := Locale{language: lang}
	if len(segments) > 1 {
		region := strings.ToUpper(strings.TrimSpace(segments[1]))
		if isAlphaNumeric(region) && len(region) >= 2 && len(region) <= 3 {
			loc.region = region
		}
	}
	return loc, nil
}

// Language returns the lowercase language subtag.
func (l Locale) Language() string { return l.language }

// Region returns the uppercase region subtag, or "" for language-level
// locales.
func (l Locale) Region() string { return l.region }

// Code renders the canonical identifier: "ll" or "ll-RR".
func (l Locale) Code() string {
	if l.region == "" {
		return l.language
	}
	return l.language + "-" + l.region
}

// String implements fmt.Stringer.
func (l Locale) String() string { return l.Code() }

// IsZero reports whether the locale carries no value.
func (l Locale) IsZero() bool { return l.language == "" }

// Equal reports whether both locales share language and region.
func (l Locale) Equal(other Locale) bool {
	return l.language == other.language && l.region == other.region
}

// SameLanguage reports whether both locales share a language subtag,
// irrespective of region.
func (l Locale) SameLanguage(other Locale) bool {
	return l.language != "" && l.language == other.language
}

func isAlpha(value string) bool {
	for _, r := range value {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return value != ""
}

func isAlphaNumeric(value string) bool {
	for _, r := range value {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return value != ""
}
