package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatKey turns a content key into a presentable display string, the floor
// of the fallback chain. Separators (underscore, hyphen, dot, whitespace)
// become single spaces and each word is title-cased:
//
//	"user_profile_settings" -> "User Profile Settings"
//	"test"                  -> "Test"
//	""                      -> ""
//
// The function is deterministic so repeated misses render identically.
func FormatKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return ""
	}

	words := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return ""
	}

	// cases.Caser is stateful, so build one per call instead of sharing.
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
