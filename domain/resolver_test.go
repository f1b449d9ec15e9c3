package domain

import (
	"context"
	"testing"

	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

type warningRecorder struct {
	warnings []string
}

func (r *warningRecorder) Trace(string, ...any) {}
func (r *warningRecorder) Debug(string, ...any) {}
func (r *warningRecorder) Info(string, ...any)  {}
func (r *warningRecorder) Warn(msg string, args ...any) {
	r.warnings = append(r.warnings, msg)
}
func (r *warningRecorder) Error(string, ...any) {}
func (r *warningRecorder) Fatal(string, ...any) {}
func (r *warningRecorder) WithContext(context.Context) interfaces.Logger {
	return r
}

func TestResolveExplicitScope(t *testing.T) {
	registry := NewRegistry("server")
	registry.Add("foo", "server", "config.md")

	resolver := NewResolver(registry, nil)
	link := resolver.Resolve("server:foo", "index.md")
	if link == nil {
		t.Fatalf("expected a link for server:foo")
	}
	if link.Document != "config.md" || link.Anchor != "server:foo" || link.Text != "foo" {
		t.Fatalf("unexpected link %+v", link)
	}
}

func TestResolveBareTargetDefaultsScope(t *testing.T) {
	registry := NewRegistry("server")
	registry.Add("foo", "server", "config.md")

	resolver := NewResolver(registry, nil)
	bare := resolver.Resolve("foo", "index.md")
	scoped := resolver.Resolve("server:foo", "index.md")

	if bare == nil || scoped == nil {
		t.Fatalf("expected both lookups to resolve")
	}
	if *bare != *scoped {
		t.Fatalf("bare resolution %+v must equal scoped resolution %+v", bare, scoped)
	}
}

func TestResolveMissWarnsOnce(t *testing.T) {
	recorder := &warningRecorder{}
	registry := NewRegistry("server")

	resolver := NewResolver(registry, recorder)
	link := resolver.Resolve("server:missing", "index.md")
	if link != nil {
		t.Fatalf("expected no link for missing target, got %+v", link)
	}
	if len(recorder.warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(recorder.warnings))
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	registry := NewRegistry("server")
	registry.Add("timeout", "server", "first.md")
	registry.Add("timeout", "server", "second.md")

	resolver := NewResolver(registry, nil)
	link := resolver.Resolve("server:timeout", "index.md")
	if link == nil {
		t.Fatalf("expected a link")
	}
	if link.Document != "first.md" {
		t.Fatalf("duplicate anchors resolve to the first record in insertion order, got %q", link.Document)
	}
}
