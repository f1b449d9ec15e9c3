package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseInline(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	inline, err := parser.ParseInline("The `timeout` value in *seconds*")
	if err != nil {
		t.Fatalf("ParseInline: %v", err)
	}

	got := string(inline)
	if strings.Contains(got, "<p>") {
		t.Fatalf("expected paragraph wrapper to be stripped, got %q", got)
	}
	if !strings.Contains(got, "<code>timeout</code>") {
		t.Fatalf("expected inline code, got %q", got)
	}
	if !strings.Contains(got, "<em>seconds</em>") {
		t.Fatalf("expected emphasis, got %q", got)
	}
}

func TestGoldmarkParser_ParseInlineMultiBlock(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	inline, err := parser.ParseInline("first\n\nsecond")
	if err != nil {
		t.Fatalf("ParseInline: %v", err)
	}

	got := string(inline)
	if !strings.Contains(got, "<p>first</p>") || !strings.Contains(got, "<p>second</p>") {
		t.Fatalf("multi-block snippets should keep their paragraphs, got %q", got)
	}
}

func TestGoldmarkParser_SafeModeSkipsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{SafeMode: true})

	html, err := parser.Parse([]byte("hello <script>alert(1)</script>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("safe mode should not emit raw HTML, got %q", string(html))
	}
}
