// Package builder runs complete build sessions: it loads source documents,
// executes option directives across a worker pool, merges the worker
// registries, resolves cross-references, and writes the rendered pages,
// options index, and static assets to the output directory.
package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-config-docs/directive"
	"github.com/goliatone/go-config-docs/domain"
	"github.com/goliatone/go-config-docs/internal/assets"
	"github.com/goliatone/go-config-docs/internal/documents"
	"github.com/goliatone/go-config-docs/internal/links"
	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/optionindex"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

var (
	errLoaderRequired  = errors.New("builder: document loader is required")
	errScannerRequired = errors.New("builder: directive scanner is required")
	errHandlerRequired = errors.New("builder: directive handler is required")
	errParserRequired  = errors.New("builder: markdown parser is required")
)

// Config captures build session behaviour.
type Config struct {
	OutputDir string
	// Workers bounds the parallel scan phase; zero or less uses NumCPU.
	Workers    int
	CleanBuild bool
	CopyAssets bool
	// AssetBasePath prefixes published asset paths inside OutputDir.
	AssetBasePath string
	// DefaultScope seeds the build registries.
	DefaultScope string
	// IndexDocname names the generated index page (defaults to "config-options").
	IndexDocname string
	// IndexName and IndexTitle configure the generated options index.
	IndexName  string
	IndexTitle string
}

// Dependencies collects the collaborators a build session needs.
type Dependencies struct {
	Loader   *documents.Loader
	Scanner  *documents.Scanner
	Handler  *directive.Handler
	Rewriter *documents.RoleRewriter
	Parser   interfaces.MarkdownParser
	Links    links.Resolver
	Assets   assets.Resolver
	Logger   interfaces.Logger
}

// Result summarises one completed build.
type Result struct {
	BuildID        uuid.UUID
	Documents      int
	Options        int
	PagesWritten   int
	UnresolvedRefs int
	OutputDir      string
}

// Service runs build sessions.
type Service interface {
	Build(ctx context.Context) (*Result, error)
}

// NewService validates dependencies and constructs a build service.
func NewService(cfg Config, deps Dependencies) (Service, error) {
	if deps.Loader == nil {
		return nil, errLoaderRequired
	}
	if deps.Scanner == nil {
		return nil, errScannerRequired
	}
	if deps.Handler == nil {
		return nil, errHandlerRequired
	}
	if deps.Parser == nil {
		return nil, errParserRequired
	}
	if deps.Rewriter == nil {
		deps.Rewriter = documents.NewRoleRewriter("", "")
	}
	if deps.Links == nil {
		deps.Links = links.RelativeResolver{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = "dist"
	}
	if strings.TrimSpace(cfg.AssetBasePath) == "" {
		cfg.AssetBasePath = "_static"
	}
	if strings.TrimSpace(cfg.IndexDocname) == "" {
		cfg.IndexDocname = "config-options"
	}
	return &service{cfg: cfg, deps: deps}, nil
}

type service struct {
	cfg  Config
	deps Dependencies
}

// part is one renderable slice of a document: either Markdown source or a
// directive fragment produced during the scan phase.
type part struct {
	markdown []byte
	fragment *directive.Fragment
}

// docOutcome is one document's scan-phase output: its renderable parts and
// the worker-local registry holding its declared options.
type docOutcome struct {
	doc      *interfaces.Document
	parts    []part
	registry *domain.Registry
	err      error
}

// Build runs one complete session. Document scanning and directive
// execution fan out across workers, each mutating only its own per-document
// registry; a single-threaded merge in document order recombines them before
// the serial render phase, so resolution stays deterministic regardless of
// worker scheduling.
func (s *service) Build(ctx context.Context) (*Result, error) {
	docs, titles, err := s.deps.Loader.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.scanConcurrently(ctx, docs)
	if err != nil {
		return nil, err
	}

	// Merge phase: the sole synchronization point. Document order keeps the
	// merged insertion order stable across runs.
	registry := domain.NewRegistry(s.cfg.DefaultScope)
	for _, outcome := range outcomes {
		registry.Merge(outcome.registry)
	}

	resolver := domain.NewResolver(registry, s.deps.Logger)

	if err := s.prepareOutput(); err != nil {
		return nil, err
	}

	result := &Result{
		BuildID:   uuid.New(),
		Documents: len(docs),
		Options:   registry.Len(),
		OutputDir: s.cfg.OutputDir,
	}

	for _, outcome := range outcomes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docname := outcome.doc.Docname
		title, ok := titles.Title(docname)
		if !ok {
			// Excluded from the build: options stay registered, page is not
			// rendered.
			continue
		}
		if err := s.renderPage(outcome, title, resolver, result); err != nil {
			return nil, err
		}
		result.PagesWritten++
	}

	if err := s.renderIndex(registry, titles); err != nil {
		return nil, err
	}
	result.PagesWritten++

	if s.cfg.CopyAssets {
		if err := assets.Publish(s.deps.Assets, s.cfg.OutputDir, s.cfg.AssetBasePath); err != nil {
			return nil, err
		}
	}

	s.deps.Logger.Info("build complete",
		"build_id", result.BuildID.String(),
		"documents", result.Documents,
		"options", result.Options,
		"pages", result.PagesWritten,
		"unresolved_refs", result.UnresolvedRefs,
	)
	return result, nil
}

// scanConcurrently fans documents out across the worker pool. Workers write
// to disjoint slice slots, so no locking is needed beyond the jobs channel.
func (s *service) scanConcurrently(ctx context.Context, docs []*interfaces.Document) ([]*docOutcome, error) {
	outcomes := make([]*docOutcome, len(docs))
	if len(docs) == 0 {
		return outcomes, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < s.effectiveWorkerCount(len(docs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					outcomes[idx] = &docOutcome{doc: docs[idx], err: ctx.Err()}
					return
				default:
					outcomes[idx] = s.scanDocument(docs[idx])
				}
			}
		}()
	}

	for idx := range docs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	var errorsSlice []error
	for idx, outcome := range outcomes {
		if outcome == nil {
			outcomes[idx] = &docOutcome{doc: docs[idx], registry: domain.NewRegistry(s.cfg.DefaultScope)}
			continue
		}
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
		}
	}
	if len(errorsSlice) > 0 {
		return nil, errors.Join(errorsSlice...)
	}
	return outcomes, nil
}

// scanDocument extracts the document's declarations and renders each into a
// display fragment, registering options into the document's own registry.
func (s *service) scanDocument(doc *interfaces.Document) *docOutcome {
	outcome := &docOutcome{
		doc:      doc,
		registry: domain.NewRegistry(s.cfg.DefaultScope),
	}

	for _, segment := range s.deps.Scanner.Scan(doc) {
		if segment.Declaration == nil {
			outcome.parts = append(outcome.parts, part{markdown: segment.Markdown})
			continue
		}
		fragment, err := s.deps.Handler.Run(*segment.Declaration, outcome.registry)
		if err != nil {
			outcome.err = fmt.Errorf("builder: document %s: %w", doc.Docname, err)
			return outcome
		}
		if fragment != nil {
			outcome.parts = append(outcome.parts, part{fragment: fragment})
		}
	}
	return outcome
}

func (s *service) renderPage(outcome *docOutcome, title string, resolver *domain.Resolver, result *Result) error {
	docname := outcome.doc.Docname

	var body bytes.Buffer
	for _, p := range outcome.parts {
		if p.fragment != nil {
			body.Write(p.fragment.Rendered())
			body.WriteByte('\n')
			continue
		}

		rewritten := s.deps.Rewriter.Rewrite(p.markdown, func(target string) (string, bool) {
			link := resolver.Resolve(target, docname)
			if link == nil {
				result.UnresolvedRefs++
				return "", false
			}
			href, err := s.deps.Links.Resolve(docname, link.Document, link.Anchor)
			if err != nil {
				s.deps.Logger.Warn("could not build link for reference",
					"target", target,
					"document", docname,
					"error", err,
				)
				result.UnresolvedRefs++
				return "", false
			}
			// The reference text mirrors the target exactly as written,
			// scope prefix included.
			return fmt.Sprintf(`<a class="configref" href=%q><code>%s</code></a>`,
				href, html.EscapeString(target)), true
		})

		rendered, err := s.deps.Parser.Parse(rewritten)
		if err != nil {
			return fmt.Errorf("builder: render %s: %w", docname, err)
		}
		body.Write(rendered)
	}

	return s.writePage(docname, pageContext{
		Title:   title,
		CSSHref: s.assetHref(docname, "config-options.css"),
		JSHref:  s.assetHref(docname, "config-options.js"),
		Body:    safeHTML(body.Bytes()),
	})
}

func (s *service) renderIndex(registry *domain.Registry, titles interfaces.TitleTable) error {
	index := optionindex.New(s.cfg.IndexName, s.cfg.IndexTitle, titles)
	docname := s.cfg.IndexDocname

	headingSlug, err := slug.Normalize(index.Localname())
	if err != nil {
		headingSlug = index.Name()
	}

	groups := index.Generate(registry)
	groupContexts := make([]indexGroupContext, 0, len(groups))
	for _, group := range groups {
		entries := make([]indexEntryContext, 0, len(group.Entries))
		for _, entry := range group.Entries {
			href, err := s.deps.Links.Resolve(docname, entry.Document, entry.Anchor)
			if err != nil {
				return fmt.Errorf("builder: index link for %s: %w", entry.Anchor, err)
			}
			entries = append(entries, indexEntryContext{
				Name:  entry.Name,
				Href:  href,
				Extra: safeHTML([]byte(entry.Extra)),
			})
		}
		groupContexts = append(groupContexts, indexGroupContext{Scope: group.Scope, Entries: entries})
	}

	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, indexContext{
		Title:   index.Localname(),
		Slug:    headingSlug,
		CSSHref: s.assetHref(docname, "config-options.css"),
		JSHref:  s.assetHref(docname, "config-options.js"),
		Groups:  groupContexts,
	}); err != nil {
		return fmt.Errorf("builder: render index: %w", err)
	}
	return s.writeFile(docname, page.Bytes())
}

func (s *service) writePage(docname string, pageCtx pageContext) error {
	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, pageCtx); err != nil {
		return fmt.Errorf("builder: render page %s: %w", docname, err)
	}
	return s.writeFile(docname, page.Bytes())
}

func (s *service) writeFile(docname string, content []byte) error {
	dest := filepath.Join(s.cfg.OutputDir, filepath.FromSlash(docname)+".html")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("builder: create %s: %w", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return fmt.Errorf("builder: write %s: %w", dest, err)
	}
	return nil
}

func (s *service) prepareOutput() error {
	if s.cfg.CleanBuild {
		if err := os.RemoveAll(s.cfg.OutputDir); err != nil {
			return fmt.Errorf("builder: clean %s: %w", s.cfg.OutputDir, err)
		}
	}
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("builder: create %s: %w", s.cfg.OutputDir, err)
	}
	return nil
}

func safeHTML(content []byte) template.HTML {
	return template.HTML(content)
}

func (s *service) assetHref(docname, asset string) string {
	base := strings.TrimPrefix(s.cfg.AssetBasePath, "/")
	return links.RelativeTo(docname, base+"/"+asset)
}

func (s *service) effectiveWorkerCount(docCount int) int {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if docCount > 0 && workers > docCount {
		return docCount
	}
	return workers
}
