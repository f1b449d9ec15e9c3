package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrDomainNameRequired indicates the domain descriptor is missing a name.
var ErrDomainNameRequired = errors.New("configdocs config: domain name is required")

// ErrDefaultScopeRequired indicates the fallback scope was cleared without replacement.
var ErrDefaultScopeRequired = errors.New("configdocs config: default scope is required")
var ErrSummaryOptionRequired = errors.New("configdocs config: summary option name is required")
var ErrFieldNameRequired = errors.New("configdocs config: field name is required")
var ErrFieldLabelRequired = errors.New("configdocs config: field label is required")
var ErrFieldDuplicate = errors.New("configdocs config: duplicate field name")
var ErrContentDirRequired = errors.New("configdocs config: content directory is required")
var ErrBuildOutputDirRequired = errors.New("configdocs config: build output directory is required")
var ErrBuildWorkersInvalid = errors.New("configdocs config: build workers must be zero or positive")
var ErrLoggingProviderRequired = errors.New("configdocs config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("configdocs config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("configdocs config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("configdocs config: logging format is invalid")

// Config aggregates the extension's behaviour toggles and adapter bindings.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Domain    DomainConfig
	Directive DirectiveConfig
	Content   ContentConfig
	Build     BuildConfig
	Links     LinksConfig
	Parser    ParserConfig
	Assets    AssetConfig
	Logging   LoggingConfig
	Features  Features
}

// DomainConfig names the registration unit exposed to the documentation host.
type DomainConfig struct {
	Name          string
	Label         string
	IndexName     string
	DirectiveName string
	RoleName      string
}

// DirectiveConfig captures option-directive rendering behaviour.
type DirectiveConfig struct {
	// DefaultScope partitions option keys when a declaration omits the
	// scope argument.
	DefaultScope string
	// SummaryOption names the mandatory short-description option.
	SummaryOption string
	// HasIDRepeat repeats the option key as the first row of the details table.
	HasIDRepeat bool
	// IDKeyText labels the repeated key row when HasIDRepeat is set.
	IDKeyText string
	// Fields overrides the built-in ordered field set when non-empty.
	Fields []FieldConfig
}

// FieldConfig pairs a directive option name with its rendered label.
// Declaration order is the rendering order.
type FieldConfig struct {
	Name  string
	Label string
}

// ContentConfig captures filesystem discovery behaviour for source documents.
type ContentConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
}

// BuildConfig captures behaviour for build sessions.
type BuildConfig struct {
	OutputDir     string
	BaseURL       string
	Workers       int
	CleanBuild    bool
	CopyAssets    bool
	RenderTimeout time.Duration
}

// LinksConfig captures routing configuration for cross-document link resolution.
type LinksConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based link resolver.
type URLKitResolverConfig struct {
	Group       string
	Route       string
	DocParam    string
	AnchorQuery string
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// AssetConfig controls static asset publication for the output theme.
type AssetConfig struct {
	// BasePath prefixes published asset paths inside the output directory.
	BasePath string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional behaviour.
type Features struct {
	Logger   bool
	Commands bool
}

// DefaultConfig returns opinionated defaults matching the stock extension.
func DefaultConfig() Config {
	return Config{
		Domain: DomainConfig{
			Name:          "config-cert",
			Label:         "Configuration Options",
			IndexName:     "options",
			DirectiveName: "option",
			RoleName:      "option",
		},
		Directive: DirectiveConfig{
			DefaultScope:  "server",
			SummaryOption: "summary",
			HasIDRepeat:   false,
			IDKeyText:     "ID: ",
		},
		Content: ContentConfig{
			BasePath:  "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Build: BuildConfig{
			OutputDir:  "dist",
			Workers:    0,
			CleanBuild: true,
			CopyAssets: true,
		},
		Links:  LinksConfig{},
		Parser: ParserConfig{},
		Assets: AssetConfig{
			BasePath: "_static",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Domain.Name) == "" {
		return ErrDomainNameRequired
	}
	if strings.TrimSpace(cfg.Directive.DefaultScope) == "" {
		return ErrDefaultScopeRequired
	}
	if strings.TrimSpace(cfg.Directive.SummaryOption) == "" {
		return ErrSummaryOptionRequired
	}
	seen := map[string]struct{}{}
	for _, field := range cfg.Directive.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return ErrFieldNameRequired
		}
		if strings.TrimSpace(field.Label) == "" {
			return fmt.Errorf("%w: %s", ErrFieldLabelRequired, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrFieldDuplicate, name)
		}
		seen[name] = struct{}{}
	}
	if strings.TrimSpace(cfg.Content.BasePath) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Build.OutputDir) == "" {
		return ErrBuildOutputDirRequired
	}
	if cfg.Build.Workers < 0 {
		return ErrBuildWorkersInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
