// Package configdocs renders configuration-option documentation from
// Markdown sources. Option declarations become styled HTML fragments with
// stable anchors, cross-references resolve against a per-build registry, and
// every build emits a grouped options index page.
package configdocs

import (
	"context"
	"io/fs"
	"os"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-config-docs/builder"
	"github.com/goliatone/go-config-docs/directive"
	"github.com/goliatone/go-config-docs/domain"
	"github.com/goliatone/go-config-docs/internal/assets"
	"github.com/goliatone/go-config-docs/internal/commands"
	buildcmd "github.com/goliatone/go-config-docs/internal/commands/build"
	"github.com/goliatone/go-config-docs/internal/documents"
	"github.com/goliatone/go-config-docs/internal/links"
	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/internal/logging/gologger"
	"github.com/goliatone/go-config-docs/internal/markdown"
	"github.com/goliatone/go-config-docs/optionindex"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

// BuildResult exports the build session result DTO.
type BuildResult = builder.Result

// BuildService exports the build session contract.
type BuildService = builder.Service

// BuildSiteCommand exports the command message dispatched for full builds.
type BuildSiteCommand = buildcmd.BuildSiteCommand

// Registry exports the per-build option registry.
type Registry = domain.Registry

// Resolver exports the cross-reference resolver.
type Resolver = domain.Resolver

// Descriptor exports the domain registration descriptor.
type Descriptor = domain.Descriptor

// LinkResolver exports the link URL resolution contract.
type LinkResolver = links.Resolver

// AssetResolver exports the static asset resolution contract.
type AssetResolver = assets.Resolver

// Extension is the top level runtime facade. It wires the directive handler,
// document pipeline, and build orchestration from a single configuration.
type Extension struct {
	cfg      Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	parser   *markdown.GoldmarkParser
	handler  *directive.Handler
	scanner  *documents.Scanner
	rewriter *documents.RoleRewriter
	links    links.Resolver
	assets   assets.Resolver
	content  fs.FS
	buildCmd *buildcmd.BuildSiteHandler
}

// Option overrides a wiring decision made by New.
type Option func(*Extension)

// WithLoggerProvider injects a logger provider, overriding the configured one.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(e *Extension) {
		e.provider = provider
	}
}

// WithContentFS overrides the content filesystem. Defaults to an os.DirFS
// rooted at the configured content base path.
func WithContentFS(fsys fs.FS) Option {
	return func(e *Extension) {
		e.content = fsys
	}
}

// WithLinkResolver overrides the link resolver used for rendered references.
func WithLinkResolver(resolver links.Resolver) Option {
	return func(e *Extension) {
		e.links = resolver
	}
}

// WithAssetResolver overrides the source of published static assets.
func WithAssetResolver(resolver assets.Resolver) Option {
	return func(e *Extension) {
		e.assets = resolver
	}
}

// New constructs an extension from the provided configuration.
func New(cfg Config, opts ...Option) (*Extension, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ext := &Extension{cfg: cfg}
	for _, opt := range opts {
		opt(ext)
	}

	if ext.provider == nil && cfg.Features.Logger {
		provider, err := newLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		ext.provider = provider
	}
	ext.logger = logging.ModuleLogger(ext.provider, "")

	ext.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: cfg.Parser.Extensions,
		Sanitize:   cfg.Parser.Sanitize,
		HardWraps:  cfg.Parser.HardWraps,
		SafeMode:   cfg.Parser.SafeMode,
	})

	fields := fieldSet(cfg.Directive.Fields)
	ext.handler = directive.NewHandler(directive.Config{
		DefaultScope:  cfg.Directive.DefaultScope,
		SummaryOption: cfg.Directive.SummaryOption,
		HasIDRepeat:   cfg.Directive.HasIDRepeat,
		IDKeyText:     cfg.Directive.IDKeyText,
		Fields:        fields,
	}, ext.parser, ext.parser, logging.DirectiveLogger(ext.provider))

	ext.scanner = documents.NewScanner(documents.ScannerConfig{
		DomainName:    cfg.Domain.Name,
		DirectiveName: cfg.Domain.DirectiveName,
		SummaryOption: cfg.Directive.SummaryOption,
		Fields:        fields,
	}, logging.DocumentsLogger(ext.provider))

	ext.rewriter = documents.NewRoleRewriter(cfg.Domain.Name, cfg.Domain.RoleName)

	if ext.links == nil {
		ext.links = newLinkResolver(cfg)
	}
	if ext.assets == nil {
		ext.assets = assets.EmbeddedResolver{}
	}
	if ext.content == nil {
		ext.content = os.DirFS(cfg.Content.BasePath)
	}

	if cfg.Features.Commands {
		var cmdOpts []commands.HandlerOption[buildcmd.BuildSiteCommand]
		if cfg.Build.RenderTimeout > 0 {
			cmdOpts = append(cmdOpts, commands.WithTimeout[buildcmd.BuildSiteCommand](cfg.Build.RenderTimeout))
		}
		ext.buildCmd = buildcmd.NewBuildSiteHandler(
			ext.runBuildCommand,
			logging.BuilderLogger(ext.provider),
			func() bool { return true },
			cmdOpts...,
		)
	}

	return ext, nil
}

// Config returns the configuration the extension was built with.
func (e *Extension) Config() Config {
	return e.cfg
}

// Descriptor reports how the extension registers with a documentation host.
// Both parallel flags are set: workers build isolated registries that merge
// deterministically.
func (e *Extension) Descriptor() Descriptor {
	return Descriptor{
		Name:          e.cfg.Domain.Name,
		Label:         e.cfg.Domain.Label,
		DirectiveName: e.cfg.Domain.DirectiveName,
		RoleName:      e.cfg.Domain.RoleName,
		IndexName:     e.cfg.Domain.IndexName,
		ParallelRead:  true,
		ParallelWrite: true,
	}
}

// Logger returns the extension's root logger.
func (e *Extension) Logger() interfaces.Logger {
	return e.logger
}

// Parser returns the configured Markdown parser.
func (e *Extension) Parser() interfaces.MarkdownParser {
	return e.parser
}

// Handler returns the configured option directive handler.
func (e *Extension) Handler() *directive.Handler {
	return e.handler
}

// Scanner returns the configured declaration scanner.
func (e *Extension) Scanner() *documents.Scanner {
	return e.scanner
}

// Assets returns the resolver serving the extension's static assets.
func (e *Extension) Assets() AssetResolver {
	return e.assets
}

// Links returns the resolver used for rendered reference URLs.
func (e *Extension) Links() LinkResolver {
	return e.links
}

// NewIndex returns an options index bound to the configured names and the
// supplied title lookup.
func (e *Extension) NewIndex(titles interfaces.TitleResolver) *optionindex.Index {
	return optionindex.New(e.cfg.Domain.IndexName, e.cfg.Domain.Label, titles)
}

// Builder returns a build service wired with the configured behaviour.
func (e *Extension) Builder() (BuildService, error) {
	return e.newBuildService(buildOverrides{})
}

// NewRegistry returns an empty registry seeded with the configured default
// scope. Builds create one per worker and merge them.
func (e *Extension) NewRegistry() *Registry {
	return domain.NewRegistry(e.cfg.Directive.DefaultScope)
}

// NewResolver returns a cross-reference resolver over the given registry.
func (e *Extension) NewResolver(registry *Registry) *Resolver {
	return domain.NewResolver(registry, logging.DomainLogger(e.provider))
}

// BuildSite runs one full build session with the configured behaviour.
func (e *Extension) BuildSite(ctx context.Context) (*BuildResult, error) {
	svc, err := e.newBuildService(buildOverrides{})
	if err != nil {
		return nil, err
	}
	return svc.Build(ctx)
}

// BuildCommand returns the go-command handler for dispatching builds, or nil
// when the commands feature is disabled.
func (e *Extension) BuildCommand() *buildcmd.BuildSiteHandler {
	return e.buildCmd
}

type buildOverrides struct {
	contentDir string
	outputDir  string
	workers    int
	cleanBuild *bool
	copyAssets *bool
}

func (e *Extension) runBuildCommand(ctx context.Context, msg BuildSiteCommand) (*BuildResult, error) {
	svc, err := e.newBuildService(buildOverrides{
		contentDir: msg.ContentDir,
		outputDir:  msg.OutputDir,
		workers:    msg.Workers,
		cleanBuild: &msg.CleanBuild,
		copyAssets: &msg.CopyAssets,
	})
	if err != nil {
		return nil, err
	}
	return svc.Build(ctx)
}

func (e *Extension) newBuildService(overrides buildOverrides) (builder.Service, error) {
	cfg := e.cfg

	content := e.content
	if overrides.contentDir != "" {
		content = os.DirFS(overrides.contentDir)
	}
	outputDir := cfg.Build.OutputDir
	if overrides.outputDir != "" {
		outputDir = overrides.outputDir
	}
	workers := cfg.Build.Workers
	if overrides.workers > 0 {
		workers = overrides.workers
	}
	cleanBuild := cfg.Build.CleanBuild
	if overrides.cleanBuild != nil {
		cleanBuild = *overrides.cleanBuild
	}
	copyAssets := cfg.Build.CopyAssets
	if overrides.copyAssets != nil {
		copyAssets = *overrides.copyAssets
	}

	loader := documents.NewLoader(content, documents.LoaderConfig{
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
	})

	return builder.NewService(builder.Config{
		OutputDir:     outputDir,
		Workers:       workers,
		CleanBuild:    cleanBuild,
		CopyAssets:    copyAssets,
		AssetBasePath: cfg.Assets.BasePath,
		DefaultScope:  cfg.Directive.DefaultScope,
		IndexName:     cfg.Domain.IndexName,
		IndexTitle:    cfg.Domain.Label,
	}, builder.Dependencies{
		Loader:   loader,
		Scanner:  e.scanner,
		Handler:  e.handler,
		Rewriter: e.rewriter,
		Parser:   e.parser,
		Links:    e.links,
		Assets:   e.assets,
		Logger:   logging.BuilderLogger(e.provider),
	})
}

func newLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	format := cfg.Logging.Format
	if cfg.Logging.Provider == "console" && format == "" {
		format = "console"
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
}

func newLinkResolver(cfg Config) links.Resolver {
	if cfg.Links.RouteConfig != nil {
		manager := urlkit.NewRouteManager(cfg.Links.RouteConfig)
		return links.NewURLKitResolver(links.URLKitResolverOptions{
			Manager:  manager,
			Group:    cfg.Links.URLKit.Group,
			Route:    cfg.Links.URLKit.Route,
			DocParam: cfg.Links.URLKit.DocParam,
		})
	}
	if base := strings.TrimSpace(cfg.Build.BaseURL); base != "" {
		return links.AbsoluteResolver{BaseURL: base}
	}
	return links.RelativeResolver{}
}

func fieldSet(configured []FieldConfig) directive.FieldSet {
	if len(configured) == 0 {
		return directive.DefaultFieldSet()
	}
	fields := make(directive.FieldSet, 0, len(configured))
	for _, field := range configured {
		fields = append(fields, directive.Field{Name: field.Name, Label: field.Label})
	}
	return fields
}
