package catalogcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-contentkit/internal/domain"
)

const (
	preloadMessageType    = "contentkit.catalog.preload"
	invalidateMessageType = "contentkit.catalog.invalidate"
	resetStatsMessageType = "contentkit.stats.reset"
)

// PreloadCatalogCommand warms the document cache for the listed domains
// across every supported locale. An empty Domains slice asks the handler to
// use the configured preload set.
type PreloadCatalogCommand struct {
	// Domains selects the content domains to warm, e.g. "card-name".
	Domains []string `json:"domains,omitempty"`
}

// Type implements command.Message.
func (PreloadCatalogCommand) Type() string { return preloadMessageType }

// Validate rejects unknown domain names before handlers execute.
func (cmd PreloadCatalogCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Domains, validation.Each(validation.By(func(value any) error {
			name, _ := value.(string)
			if strings.TrimSpace(name) == "" {
				return validation.NewError("contentkit.catalog.preload.domain_required", "domain name cannot be blank")
			}
			if !domain.IsKnown(domain.Parse(name)) {
				return validation.NewError("contentkit.catalog.preload.domain_unknown", "unknown content domain")
			}
			return nil
		}))),
	)
}

// InvalidateCacheCommand drops every cached document so subsequent lookups
// reload from the source.
type InvalidateCacheCommand struct{}

// Type implements command.Message.
func (InvalidateCacheCommand) Type() string { return invalidateMessageType }

// Validate implements command.Message; invalidation carries no input.
func (InvalidateCacheCommand) Validate() error { return nil }

// ResetStatisticsCommand zeroes the error counters. Resetting discards the
// error-rate history, so the caller has to confirm explicitly.
type ResetStatisticsCommand struct {
	Confirm bool `json:"confirm"`
}

// Type implements command.Message.
func (ResetStatisticsCommand) Type() string { return resetStatsMessageType }

// Validate requires the explicit confirmation flag.
func (cmd ResetStatisticsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Confirm, validation.Required.Error("confirm must be set to reset statistics")),
	)
}
