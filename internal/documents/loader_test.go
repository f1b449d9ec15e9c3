package documents

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	data, err := os.ReadFile("testdata/config.md")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Title != "Server Configuration" {
		t.Fatalf("FrontMatter Title mismatch, got %q", meta.Title)
	}
	if meta.Slug != "server-configuration" {
		t.Fatalf("FrontMatter Slug mismatch, got %q", meta.Slug)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Server Configuration") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "config.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Docname != "config" {
		t.Fatalf("expected docname config, got %q", doc.Docname)
	}
	if len(doc.Checksum) == 0 {
		t.Fatalf("expected checksum to be populated")
	}
}

func TestLoaderLoadAllBuildsTitleTable(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Recursive: true})

	docs, titles, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}

	if title, ok := titles.Title("config"); !ok || title != "Server Configuration" {
		t.Fatalf("expected title for config, got %q (%v)", title, ok)
	}
	if _, ok := titles.Title("notitle"); ok {
		t.Fatalf("documents without a title must stay out of the title table")
	}
	if _, ok := titles.Title("draft"); ok {
		t.Fatalf("draft documents must stay out of the title table")
	}
}

func TestTitleFallsBackToHeading(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "draft.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	doc.FrontMatter.Title = ""
	if got := Title(doc); got != "Draft Notes" {
		t.Fatalf("expected heading fallback title, got %q", got)
	}
}
