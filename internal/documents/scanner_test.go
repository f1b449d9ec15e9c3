package documents

import (
	"context"
	"os"
	"strings"
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

func loadFixture(t *testing.T, name string) *interfaces.Document {
	t.Helper()
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{})
	doc, err := loader.LoadFile(context.Background(), name)
	if err != nil {
		t.Fatalf("load fixture %s: %v", name, err)
	}
	return doc
}

func TestScannerExtractsDeclaration(t *testing.T) {
	doc := loadFixture(t, "config.md")
	segments := NewScanner(ScannerConfig{}, nil).Scan(doc)

	var decls int
	for _, segment := range segments {
		if segment.Declaration == nil {
			continue
		}
		decls++
		decl := segment.Declaration
		if decl.Key != "timeout" || decl.Scope != "server" {
			t.Fatalf("unexpected declaration arguments %+v", decl)
		}
		if decl.Document != "config" {
			t.Fatalf("expected declaration document config, got %q", decl.Document)
		}
		if decl.Options["summary"] != "Request timeout in `seconds`" {
			t.Fatalf("unexpected summary %q", decl.Options["summary"])
		}
		if decl.Options["unit"] != "seconds" {
			t.Fatalf("unexpected unit %q", decl.Options["unit"])
		}
		if !strings.Contains(decl.Body, "disable the timeout") {
			t.Fatalf("unexpected body %q", decl.Body)
		}
	}
	if decls != 1 {
		t.Fatalf("expected one declaration, got %d", decls)
	}

	// Markdown before and after the directive must survive in order.
	if segments[0].Markdown == nil || !strings.Contains(string(segments[0].Markdown), "# Server Configuration") {
		t.Fatalf("expected leading markdown segment, got %+v", segments[0])
	}
	last := segments[len(segments)-1]
	if last.Markdown == nil || !strings.Contains(string(last.Markdown), "connection pooling") {
		t.Fatalf("expected trailing markdown segment, got %+v", last)
	}
}

func TestScannerRejectsUnknownField(t *testing.T) {
	recorder := &warningRecorder{}
	doc := &interfaces.Document{
		Docname: "bad",
		Body: []byte("```{config-cert:option} timeout\n" +
			":summary: fine\n" +
			":bogus: not a field\n" +
			"```\n"),
	}

	segments := NewScanner(ScannerConfig{}, recorder).Scan(doc)
	for _, segment := range segments {
		if segment.Declaration != nil {
			t.Fatalf("declaration with unknown field must be rejected")
		}
	}
	if len(recorder.warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(recorder.warnings))
	}
}

func TestScannerRejectsInvalidIdentifier(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"colon", "has:colon"},
		{"uppercase", "Timeout"},
		{"punctuation", "time!out"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := &warningRecorder{}
			doc := &interfaces.Document{
				Docname: "bad",
				Body:    []byte("```{config-cert:option} " + tc.key + "\n:summary: nope\n```\n"),
			}

			segments := NewScanner(ScannerConfig{}, recorder).Scan(doc)
			for _, segment := range segments {
				if segment.Declaration != nil {
					t.Fatalf("key %q must be rejected", tc.key)
				}
			}
			if len(recorder.warnings) != 1 {
				t.Fatalf("expected one warning for %q, got %d", tc.key, len(recorder.warnings))
			}
		})
	}
}

func TestScannerWarnsOnUnterminatedFence(t *testing.T) {
	recorder := &warningRecorder{}
	doc := &interfaces.Document{
		Docname: "bad",
		Body:    []byte("```{config-cert:option} timeout\n:summary: fine\n"),
	}

	NewScanner(ScannerConfig{}, recorder).Scan(doc)
	if len(recorder.warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(recorder.warnings))
	}
}

func TestRoleRewriter(t *testing.T) {
	rewriter := NewRoleRewriter("config-cert", "option")
	src := []byte("See {config-cert:option}`db:timeout` and {config-cert:option}`missing`.")

	targets := rewriter.Targets(src)
	if len(targets) != 2 || targets[0] != "db:timeout" || targets[1] != "missing" {
		t.Fatalf("unexpected targets %v", targets)
	}

	out := rewriter.Rewrite(src, func(target string) (string, bool) {
		if target == "db:timeout" {
			return `<a class="configref" href="db.html#db:timeout"><code>timeout</code></a>`, true
		}
		return "", false
	})

	got := string(out)
	if !strings.Contains(got, `href="db.html#db:timeout"`) {
		t.Fatalf("resolved role must become a link, got %q", got)
	}
	if !strings.Contains(got, "`missing`") {
		t.Fatalf("unresolved role must degrade to inline code, got %q", got)
	}
}
