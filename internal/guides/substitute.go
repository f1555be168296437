package guides

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// Substitute renders {name} style placeholders from params. Placeholders
// without a usable parameter are left verbatim, which makes the operation
// idempotent: re-rendering with the same params never changes the output.
// The second return reports how many placeholders remained unresolved.
func Substitute(template string, params map[string]string) (string, int) {
	if template == "" {
		return "", 0
	}

	missing := 0
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := params[name]; ok && value != "" {
			return value
		}
		missing++
		return match
	})
	return rendered, missing
}
