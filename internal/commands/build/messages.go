package buildcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const buildSiteMessageType = "configdocs.build.site"

// BuildSiteCommand triggers a full documentation build: load the Markdown
// sources under ContentDir, execute every option directive, and write the
// rendered pages, options index, and assets to OutputDir.
type BuildSiteCommand struct {
	// ContentDir selects the filesystem path holding the Markdown sources.
	ContentDir string `json:"content_dir"`
	// OutputDir receives the rendered HTML output.
	OutputDir string `json:"output_dir"`
	// Workers bounds the parallel directive phase; zero means one per CPU.
	Workers int `json:"workers,omitempty"`
	// CleanBuild removes the output directory before writing.
	CleanBuild bool `json:"clean_build,omitempty"`
	// CopyAssets publishes the bundled stylesheet and script into the output.
	CopyAssets bool `json:"copy_assets,omitempty"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures the source and destination paths are present before
// handlers execute.
func (cmd BuildSiteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ContentDir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("configdocs.build.site.content_dir_required", "content directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.OutputDir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("configdocs.build.site.output_dir_required", "output directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.Workers, validation.Min(0)),
	)
}
