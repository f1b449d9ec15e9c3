package configdocs

import "github.com/goliatone/go-config-docs/internal/runtimeconfig"

var (
	ErrDomainNameRequired      = runtimeconfig.ErrDomainNameRequired
	ErrDefaultScopeRequired    = runtimeconfig.ErrDefaultScopeRequired
	ErrSummaryOptionRequired   = runtimeconfig.ErrSummaryOptionRequired
	ErrFieldNameRequired       = runtimeconfig.ErrFieldNameRequired
	ErrFieldLabelRequired      = runtimeconfig.ErrFieldLabelRequired
	ErrFieldDuplicate          = runtimeconfig.ErrFieldDuplicate
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrBuildOutputDirRequired  = runtimeconfig.ErrBuildOutputDirRequired
	ErrBuildWorkersInvalid     = runtimeconfig.ErrBuildWorkersInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	DomainConfig         = runtimeconfig.DomainConfig
	DirectiveConfig      = runtimeconfig.DirectiveConfig
	FieldConfig          = runtimeconfig.FieldConfig
	ContentConfig        = runtimeconfig.ContentConfig
	BuildConfig          = runtimeconfig.BuildConfig
	LinksConfig          = runtimeconfig.LinksConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	ParserConfig         = runtimeconfig.ParserConfig
	AssetConfig          = runtimeconfig.AssetConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	Features             = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
