package domain

import "strings"

// Shape describes the payload layout a domain's documents carry.
type Shape string

const (
	// ShapeText marks domains whose documents map keys to single strings.
	ShapeText Shape = "text"
	// ShapeList marks domains whose documents map keys to ordered string lists.
	ShapeList Shape = "list"
)

// Known returns every declared domain in a stable order.
func Known() []Domain {
	return []Domain{
		DomainCardName,
		DomainCardUprightMeaning,
		DomainCardReversedMeaning,
		DomainCardKeywords,
		DomainJournalPrompt,
		DomainAffirmation,
		DomainGuideTemplate,
		DomainUILabel,
	}
}

// IsKnown reports whether value names a declared domain.
func IsKnown(value Domain) bool {
	switch value {
	case DomainCardName,
		DomainCardUprightMeaning,
		DomainCardReversedMeaning,
		DomainCardKeywords,
		DomainJournalPrompt,
		DomainAffirmation,
		DomainGuideTemplate,
		DomainUILabel:
		return true
	default:
		return false
	}
}

// ShapeOf reports the payload shape for a domain. Unknown domains default to
// text so lookups against them still resolve through the string chain.
func ShapeOf(value Domain) Shape {
	switch value {
	case DomainCardKeywords, DomainJournalPrompt, DomainAffirmation, DomainGuideTemplate:
		return ShapeList
	default:
		return ShapeText
	}
}

// Parse coerces an arbitrary string into a Domain, trimming whitespace and
// lowering case. The result may be unknown; callers that require a declared
// domain should check IsKnown.
func Parse(input string) Domain {
	return Domain(strings.ToLower(strings.TrimSpace(input)))
}
