package domain

import internaldomain "github.com/goliatone/go-contentkit/internal/domain"

// Domain identifies one fixed category of localized content.
type Domain = internaldomain.Domain

const (
	// DomainCardName holds display names for cards.
	DomainCardName = internaldomain.DomainCardName
	// DomainCardUprightMeaning holds upright interpretation text per card.
	DomainCardUprightMeaning = internaldomain.DomainCardUprightMeaning
	// DomainCardReversedMeaning holds reversed interpretation text per card.
	DomainCardReversedMeaning = internaldomain.DomainCardReversedMeaning
	// DomainCardKeywords holds keyword lists per card.
	DomainCardKeywords = internaldomain.DomainCardKeywords
	// DomainJournalPrompt holds rotating journal prompt lists per slot.
	DomainJournalPrompt = internaldomain.DomainJournalPrompt
	// DomainAffirmation holds rotating daily affirmation lists.
	DomainAffirmation = internaldomain.DomainAffirmation
	// DomainGuideTemplate holds guide interpretation template variants.
	DomainGuideTemplate = internaldomain.DomainGuideTemplate
	// DomainUILabel holds interface strings.
	DomainUILabel = internaldomain.DomainUILabel
)

// Shape describes the payload layout a domain's documents carry.
type Shape = internaldomain.Shape

const (
	// ShapeText marks domains whose documents map keys to single strings.
	ShapeText = internaldomain.ShapeText
	// ShapeList marks domains whose documents map keys to ordered string lists.
	ShapeList = internaldomain.ShapeList
)

// Known returns every declared domain in a stable order.
func Known() []Domain { return internaldomain.Known() }

// IsKnown reports whether value names a declared domain.
func IsKnown(value Domain) bool { return internaldomain.IsKnown(value) }

// ShapeOf reports the payload shape for a domain.
func ShapeOf(value Domain) Shape { return internaldomain.ShapeOf(value) }

// Parse coerces an arbitrary string into a Domain.
func Parse(input string) Domain { return internaldomain.Parse(input) }
