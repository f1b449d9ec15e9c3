package configdocs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"index.md": &fstest.MapFile{
			Data: []byte(`---
title: Getting Started
---

` + "```" + `{config-cert:option} timeout
:summary: Request timeout
:unit: seconds
` + "```" + `

Tune {config-cert:option}` + "`timeout`" + ` with care.
`),
		},
	}
}

func newTestExtension(t *testing.T, outputDir string, mutate func(*Config)) *Extension {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Build.OutputDir = outputDir
	if mutate != nil {
		mutate(&cfg)
	}

	ext, err := New(cfg, WithContentFS(contentFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ext
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Domain.Name = ""
	if _, err := New(cfg); err != ErrDomainNameRequired {
		t.Fatalf("expected ErrDomainNameRequired, got %v", err)
	}
}

func TestExtensionDescriptor(t *testing.T) {
	ext := newTestExtension(t, t.TempDir(), nil)

	desc := ext.Descriptor()
	if desc.Name != "config-cert" {
		t.Fatalf("expected domain name config-cert, got %q", desc.Name)
	}
	if desc.RoleName != "option" || desc.IndexName != "options" {
		t.Fatalf("unexpected descriptor: %+v", desc)
	}
	if !desc.ParallelRead || !desc.ParallelWrite {
		t.Fatal("expected parallel read and write support")
	}
}

func TestExtensionBuildSite(t *testing.T) {
	dir := t.TempDir()
	ext := newTestExtension(t, dir, nil)

	result, err := ext.BuildSite(context.Background())
	if err != nil {
		t.Fatalf("BuildSite: %v", err)
	}
	if result.Documents != 1 || result.Options != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), `id="server:timeout"`) {
		t.Fatalf("expected option anchor, got:\n%s", page)
	}
	if !strings.Contains(string(page), `href="#server:timeout"`) {
		t.Fatalf("expected same-page reference link, got:\n%s", page)
	}

	if _, err := os.Stat(filepath.Join(dir, "config-options.html")); err != nil {
		t.Fatalf("expected index page: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "_static", "config-options.css")); err != nil {
		t.Fatalf("expected published stylesheet: %v", err)
	}
}

func TestExtensionRegistryUsesConfiguredScope(t *testing.T) {
	ext := newTestExtension(t, t.TempDir(), func(cfg *Config) {
		cfg.Directive.DefaultScope = "client"
	})

	registry := ext.NewRegistry()
	record := registry.Add("retries", "", "index")
	if record.Anchor != "client:retries" {
		t.Fatalf("expected configured default scope, got %q", record.Anchor)
	}
}

func TestExtensionDirectiveNameIndependentOfRole(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Build.OutputDir = dir
	cfg.Domain.DirectiveName = "setting"
	cfg.Domain.RoleName = "ref"

	content := fstest.MapFS{
		"index.md": &fstest.MapFile{
			Data: []byte(`---
title: Settings
---

` + "```" + `{config-cert:setting} timeout
:summary: Request timeout
` + "```" + `

See {config-cert:ref}` + "`timeout`" + `.
`),
		},
	}

	ext, err := New(cfg, WithContentFS(content))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	desc := ext.Descriptor()
	if desc.DirectiveName != "setting" || desc.RoleName != "ref" {
		t.Fatalf("unexpected descriptor: %+v", desc)
	}

	result, err := ext.BuildSite(context.Background())
	if err != nil {
		t.Fatalf("BuildSite: %v", err)
	}
	if result.Options != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), `id="server:timeout"`) {
		t.Fatalf("expected the setting fence to register an anchor, got:\n%s", page)
	}
	if !strings.Contains(string(page), `href="#server:timeout"`) {
		t.Fatalf("expected the ref role to resolve, got:\n%s", page)
	}
}

func TestExtensionBuildCommandFeatureGated(t *testing.T) {
	ext := newTestExtension(t, t.TempDir(), nil)
	if ext.BuildCommand() != nil {
		t.Fatal("expected no command handler when commands feature is disabled")
	}

	dir := t.TempDir()
	ext = newTestExtension(t, dir, func(cfg *Config) {
		cfg.Features.Commands = true
	})
	handler := ext.BuildCommand()
	if handler == nil {
		t.Fatal("expected command handler when commands feature is enabled")
	}

	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "doc.md"), []byte("# Doc\n\nplain page\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	cmd := BuildSiteCommand{ContentDir: srcDir, OutputDir: dir}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.html")); err != nil {
		t.Fatalf("expected rendered page from command build: %v", err)
	}
}
