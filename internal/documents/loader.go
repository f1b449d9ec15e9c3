package documents

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

// LoaderConfig configures how Markdown files are discovered within a base
// directory.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem paths into documents with metadata and registers
// their titles for index generation. Documents marked draft, or lacking any
// discoverable title, are loaded but stay out of the title table: the index
// treats them as excluded from the build.
type Loader struct {
	fs        fs.FS
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads and parses a single Markdown document.
func (l *Loader) LoadFile(ctx context.Context, rel string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel = path.Clean(strings.TrimPrefix(rel, "./"))

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("documents: read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("documents: stat %s: %w", rel, err)
	}

	doc, err := BuildDocument(docnameFor(rel), rel, data, info.ModTime())
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]

	return doc, nil
}

// LoadAll discovers documents matching the configured pattern and returns
// them sorted by file path, together with the title table derived from their
// metadata.
func (l *Loader) LoadAll(ctx context.Context) ([]*interfaces.Document, interfaces.TitleTable, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	var docs []*interfaces.Document

	walkErr := fs.WalkDir(l.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && !l.recursive {
				return fs.SkipDir
			}
			return nil
		}

		matched, err := path.Match(l.pattern, path.Base(p))
		if err != nil {
			return fmt.Errorf("documents: bad pattern %q: %w", l.pattern, err)
		}
		if !matched {
			return nil
		}

		doc, err := l.LoadFile(ctx, p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("documents: walk: %w", walkErr)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})

	titles := interfaces.TitleTable{}
	for _, doc := range docs {
		if doc.FrontMatter.Draft {
			continue
		}
		if title := Title(doc); title != "" {
			titles[doc.Docname] = title
		}
	}

	return docs, titles, nil
}

var headingPattern = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)

// Title resolves a document's title: frontmatter first, then the first
// level-one heading in the body. An empty result marks the document as
// excluded from index generation.
func Title(doc *interfaces.Document) string {
	if doc == nil {
		return ""
	}
	if title := strings.TrimSpace(doc.FrontMatter.Title); title != "" {
		return title
	}
	if match := headingPattern.FindSubmatch(doc.Body); match != nil {
		return strings.TrimSpace(string(match[1]))
	}
	return ""
}

// docnameFor derives the document identifier from its relative path by
// dropping the file extension: "guides/config.md" becomes "guides/config".
func docnameFor(rel string) string {
	ext := path.Ext(rel)
	return strings.TrimSuffix(rel, ext)
}
