package guides

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-contentkit/internal/domain"
	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/internal/resolver"
	"github.com/goliatone/go-contentkit/internal/stats"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Slot names in composition order. Missing slots are skipped, never padded.
const (
	SlotOpening = "opening"
	SlotContext = "context"
	SlotAdvice  = "advice"
	SlotClosing = "closing"
)

var slotOrder = []string{SlotOpening, SlotContext, SlotAdvice, SlotClosing}

// slotSeparator joins rendered slots. Fixed so identical picks always
// compose byte-identical output.
const slotSeparator = "\n\n"

// DefaultPersona is used when a request names no guiding voice.
const DefaultPersona = "sage"

// DefaultTopic is used when a request names no subject area.
const DefaultTopic = "general"

// ComposeRequest carries everything needed to assemble one interpretation.
type ComposeRequest struct {
	Persona     string
	Topic       string
	Locale      string
	SubjectName string
	Orientation string
	// Params lets hosts supply additional placeholder values. The
	// SubjectName, Orientation, Topic, and Persona fields win over same-named
	// entries.
	Params map[string]string
}

// Service assembles guide interpretations from localized template variants.
type Service interface {
	// Compose builds an interpretation for a persona and topic: one variant
	// per slot, chosen through the injected random source, parameters
	// substituted, slots joined in fixed order. Total: an empty template
	// catalog degrades to a formatted heading instead of failing.
	Compose(ctx context.Context, req ComposeRequest) string
}

// ServiceOption configures the composer at construction time.
type ServiceOption func(*service)

// WithLogger attaches a logger for substitution diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRandom injects the pseudo-random source used for variant selection.
// Tests inject a seeded source; selection then becomes reproducible.
func WithRandom(random *rand.Rand) ServiceOption {
	return func(s *service) {
		if random != nil {
			s.random = random
		}
	}
}

// WithDefaultPersona overrides the persona used for blank requests.
func WithDefaultPersona(persona string) ServiceOption {
	return func(s *service) {
		if trimmed := normalizeToken(persona); trimmed != "" {
			s.defaultPersona = trimmed
		}
	}
}

type service struct {
	resolver       resolver.Service
	monitor        *stats.Monitor
	logger         interfaces.Logger
	defaultPersona string

	mu     sync.Mutex
	random *rand.Rand
}

// NewService constructs the composer over the fallback resolver.
func NewService(resolverService resolver.Service, monitor *stats.Monitor, opts ...ServiceOption) Service {
	s := &service{
		resolver:       resolverService,
		monitor:        monitor,
		logger:         logging.NoOp(),
		defaultPersona: DefaultPersona,
		random:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Compose(ctx context.Context, req ComposeRequest) string {
	persona := normalizeToken(req.Persona)
	if persona == "" {
		persona = s.defaultPersona
	}
	topic := normalizeToken(req.Topic)
	if topic == "" {
		topic = DefaultTopic
	}

	params := composeParams(req, persona, topic)
	templates := domain.DomainGuideTemplate.String()

	parts := make([]string, 0, len(slotOrder))
	for _, slot := range slotOrder {
		key := templateKey(persona, topic, slot)
		variants, _ := s.resolver.ResolveList(ctx, templates, key, req.Locale)
		if len(variants) == 0 {
			// Persona-default templates keep partially authored personas
			// usable for every topic.
			key = templateKey(persona, "default", slot)
			variants, _ = s.resolver.ResolveList(ctx, templates, key, req.Locale)
		}
		if len(variants) == 0 {
			continue
		}

		rendered, unresolved := Substitute(variants[s.pick(len(variants))], params)
		if unresolved > 0 {
			s.monitor.RecordError(interfaces.ErrorSubstitutionIncomplete, templates+"/"+key)
			s.logger.Debug("interpretation left placeholders unresolved",
				"key", key,
				"unresolved", unresolved,
			)
		}
		parts = append(parts, rendered)
	}

	if len(parts) == 0 {
		// No slot produced text through either template tier; serve the
		// formatted heading so the composition stays total and non-empty.
		floor := s.resolver.ResolveString(ctx, templates, persona+"."+topic, req.Locale)
		return floor.Value
	}

	return strings.Join(parts, slotSeparator)
}

// pick returns a variant index under the shared random source. Single-entry
// lists skip the source entirely so deterministic catalogs stay
// deterministic.
func (s *service) pick(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}

func composeParams(req ComposeRequest, persona, topic string) map[string]string {
	params := make(map[string]string, len(req.Params)+4)
	for key, value := range req.Params {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			params[trimmed] = value
		}
	}
	if value := strings.TrimSpace(req.SubjectName); value != "" {
		params["name"] = value
	}
	if value := strings.TrimSpace(req.Orientation); value != "" {
		params["orientation"] = value
	}
	params["topic"] = topic
	params["persona"] = persona
	return params
}

func templateKey(persona, topic, slot string) string {
	return persona + "." + topic + "." + slot
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
