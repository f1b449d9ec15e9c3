package assets

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManifestListsBothAssets(t *testing.T) {
	files := Files()
	if len(files) != 2 {
		t.Fatalf("expected two assets, got %v", files)
	}
	if files[0] != "config-options.css" || files[1] != "config-options.js" {
		t.Fatalf("unexpected asset list %v", files)
	}
}

func TestEmbeddedResolverOpens(t *testing.T) {
	resolver := EmbeddedResolver{}

	reader, err := resolver.Open("config-options.css")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !strings.Contains(string(data), ".configoption") {
		t.Fatalf("unexpected stylesheet content")
	}
}

func TestEmbeddedResolverRejectsTraversal(t *testing.T) {
	resolver := EmbeddedResolver{}
	if _, err := resolver.Open("../assets.go"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestPublishCopiesAssets(t *testing.T) {
	dir := t.TempDir()

	if err := Publish(nil, dir, "_static"); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	for _, asset := range Files() {
		dest := filepath.Join(dir, "_static", asset)
		if _, err := os.Stat(dest); err != nil {
			t.Fatalf("expected %s to be published: %v", asset, err)
		}
	}
}
