package domain

import (
	"strings"

	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

// Resolver answers cross-reference lookups against a merged registry.
type Resolver struct {
	registry *Registry
	logger   interfaces.Logger
}

// NewResolver constructs a resolver over the provided registry. A nil logger
// falls back to a no-op implementation.
func NewResolver(registry *Registry, logger interfaces.Logger) *Resolver {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Resolver{registry: registry, logger: logger}
}

// Resolve maps a reference target to a link against the registry. Targets
// without an explicit scope separator default to the registry's scope, so
// "foo" resolves exactly like "server:foo". The first record whose anchor
// matches wins when duplicate anchors exist across documents; that ambiguity
// is insertion-order-dependent and tolerated for compatibility.
//
// An unresolved target is reported once via a warning naming the target and
// the referencing document, and yields a nil link. Broken references are
// never fatal.
func (r *Resolver) Resolve(target, fromDoc string) *Link {
	if r == nil || r.registry == nil {
		return nil
	}

	target = strings.TrimSpace(target)
	if !strings.Contains(target, ":") {
		target = r.registry.DefaultScope() + ":" + target
	}

	for _, record := range r.registry.records {
		if record.Anchor == target && record.Kind == KindOption {
			return &Link{
				Document: record.Document,
				Anchor:   record.Anchor,
				Text:     record.Key,
			}
		}
	}

	r.logger.Warn("could not resolve option reference",
		"target", target,
		"document", fromDoc,
	)
	return nil
}
