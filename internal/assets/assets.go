// Package assets ships the static stylesheet and script the extension
// injects into the build's output theme, described through a go-theme
// manifest so theme-aware hosts can merge them with their own assets.
package assets

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

//go:embed static
var staticFS embed.FS

const (
	themeName    = "config-options"
	themeVersion = "0.1.0"
)

// Manifest describes the extension's static assets as a go-theme manifest.
func Manifest() *gotheme.Manifest {
	manifest := &gotheme.Manifest{
		Name:    themeName,
		Version: themeVersion,
	}
	manifest.Assets.Files = map[string]string{
		"config-options-css": "config-options.css",
		"config-options-js":  "config-options.js",
	}
	return manifest
}

// Files lists the asset paths from the manifest, normalised and sorted.
func Files() []string {
	manifest := Manifest()

	seen := map[string]struct{}{}
	var out []string
	for _, asset := range manifest.Assets.Files {
		asset = strings.TrimPrefix(strings.TrimSpace(asset), "/")
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		out = append(out, filepath.ToSlash(asset))
	}
	sort.Strings(out)
	return out
}

// Resolver resolves extension assets for copying into static outputs.
type Resolver interface {
	Open(asset string) (io.ReadCloser, error)
}

// EmbeddedResolver serves the assets bundled with the extension.
type EmbeddedResolver struct{}

// Open returns a reader for the requested asset.
func (EmbeddedResolver) Open(asset string) (io.ReadCloser, error) {
	clean := path.Clean(strings.TrimSpace(asset))
	if clean == "" || strings.HasPrefix(clean, "..") {
		return nil, fmt.Errorf("assets: invalid asset path %q", asset)
	}
	file, err := staticFS.Open(path.Join("static", clean))
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", asset, err)
	}
	return file, nil
}

// FileSystemResolver resolves assets from an fs.FS implementation, for hosts
// that override the bundled files.
type FileSystemResolver struct {
	FS       fs.FS
	BasePath string
}

// Open returns a reader for the requested asset relative to BasePath.
func (r FileSystemResolver) Open(asset string) (io.ReadCloser, error) {
	if r.FS == nil {
		return nil, fmt.Errorf("assets: filesystem resolver not configured")
	}
	asset = strings.TrimSpace(asset)
	if asset == "" {
		return nil, fmt.Errorf("assets: asset path required")
	}
	base := r.BasePath
	if strings.TrimSpace(base) == "" {
		base = "."
	}
	clean := path.Clean(path.Join(base, asset))
	if base != "." && !strings.HasPrefix(clean, path.Clean(base)) {
		return nil, fmt.Errorf("assets: asset traversal detected")
	}
	file, err := r.FS.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", asset, err)
	}
	return file, nil
}

// Publish copies every manifest asset into dir/basePath, creating
// directories as needed. A nil resolver falls back to the bundled files.
func Publish(resolver Resolver, dir, basePath string) error {
	if resolver == nil {
		resolver = EmbeddedResolver{}
	}

	target := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(basePath, "/")))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("assets: create %s: %w", target, err)
	}

	for _, asset := range Files() {
		if err := publishOne(resolver, asset, target); err != nil {
			return err
		}
	}
	return nil
}

func publishOne(resolver Resolver, asset, target string) error {
	reader, err := resolver.Open(asset)
	if err != nil {
		return err
	}
	defer reader.Close()

	dest := filepath.Join(target, filepath.FromSlash(asset))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("assets: create %s: %w", filepath.Dir(dest), err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("assets: create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("assets: write %s: %w", dest, err)
	}
	return nil
}
