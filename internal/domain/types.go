package domain

// Domain identifies one fixed category of localized content. The set is
// closed at compile time; hosts select domains, they do not register them.
type Domain string

const (
	// DomainCardName holds display names for cards
	DomainCardName Domain = "card-name"
	// DomainCardUprightMeaning holds upright interpretation text per card
	DomainCardUprightMeaning Domain = "card-upright-meaning"
	// DomainCardReversedMeaning holds reversed interpretation text per card
	DomainCardReversedMeaning Domain = "card-reversed-meaning"
	// DomainCardKeywords holds keyword lists per card
	DomainCardKeywords Domain = "card-keywords"
	// DomainJournalPrompt holds rotating journal prompt lists per slot
	DomainJournalPrompt Domain = "journal-prompt"
	// DomainAffirmation holds rotating daily affirmation lists
	DomainAffirmation Domain = "affirmation"
	// DomainGuideTemplate holds guide interpretation template variants
	DomainGuideTemplate Domain = "guide-template"
	// DomainUILabel holds interface strings
	DomainUILabel Domain = "ui-label"
)

// String returns the wire value of the domain.
func (d Domain) String() string { return string(d) }
