package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-config-docs"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		outputDir  = flag.String("output", "dist", "Directory receiving the rendered HTML output")
		workers    = flag.Int("workers", 0, "Worker count for the directive phase (0 means one per CPU)")
		baseURL    = flag.String("base-url", "", "Base URL for absolute links (empty means relative links)")
		cleanBuild = flag.Bool("clean", true, "Remove the output directory before building")
		copyAssets = flag.Bool("assets", true, "Publish the bundled stylesheet and script")
		scope      = flag.String("default-scope", "server", "Scope applied to options declared without one")
		logLevel   = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		logFormat  = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	cfg := configdocs.DefaultConfig()
	cfg.Content.BasePath = *contentDir
	cfg.Content.Pattern = *pattern
	cfg.Build.OutputDir = *outputDir
	cfg.Build.Workers = *workers
	cfg.Build.BaseURL = *baseURL
	cfg.Build.CleanBuild = *cleanBuild
	cfg.Build.CopyAssets = *copyAssets
	cfg.Directive.DefaultScope = strings.TrimSpace(*scope)
	cfg.Features.Logger = true
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	ext, err := configdocs.New(cfg)
	if err != nil {
		log.Fatalf("configure extension: %v", err)
	}

	result, err := ext.BuildSite(context.Background())
	if err != nil {
		log.Fatalf("build site: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Build %s complete\n", result.BuildID)
	fmt.Fprintf(os.Stdout, "  documents:       %d\n", result.Documents)
	fmt.Fprintf(os.Stdout, "  options:         %d\n", result.Options)
	fmt.Fprintf(os.Stdout, "  pages written:   %d\n", result.PagesWritten)
	fmt.Fprintf(os.Stdout, "  unresolved refs: %d\n", result.UnresolvedRefs)
	fmt.Fprintf(os.Stdout, "  output:          %s\n", result.OutputDir)

	if result.UnresolvedRefs > 0 {
		os.Exit(1)
	}
}
