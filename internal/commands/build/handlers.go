// Package buildcmd exposes documentation builds as go-command messages so
// hosts can dispatch them through their existing command buses.
package buildcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-config-docs/builder"
	"github.com/goliatone/go-config-docs/internal/commands"
	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

const buildSiteOperation = "build.site"

// ErrBuildFeatureDisabled is returned when command dispatch is disabled at
// runtime.
var ErrBuildFeatureDisabled = errors.New("build command: feature disabled")

var _ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)

// BuildRunner executes one build for the supplied command, returning the
// session result. The facade provides an implementation that constructs a
// session from its configuration with the command's overrides applied.
type BuildRunner func(ctx context.Context, msg BuildSiteCommand) (*builder.Result, error)

// FeatureGate reports whether command dispatch is currently enabled.
type FeatureGate func() bool

// BuildSiteHandler orchestrates documentation builds via the shared command
// handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied runner.
func NewBuildSiteHandler(runner BuildRunner, logger interfaces.Logger, enabled FeatureGate, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	if runner == nil {
		panic("buildcmd: runner cannot be nil")
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if enabled != nil && !enabled() {
			return ErrBuildFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := runner(ctx, msg)
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"build_id":        result.BuildID,
				"documents":       result.Documents,
				"options":         result.Options,
				"pages_written":   result.PagesWritten,
				"unresolved_refs": result.UnresolvedRefs,
				"output_dir":      result.OutputDir,
			}).Info("configdocs.command.build_site.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildSiteOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{
				"content_dir": msg.ContentDir,
				"output_dir":  msg.OutputDir,
			}
			if msg.Workers > 0 {
				fields["workers"] = msg.Workers
			}
			if msg.CleanBuild {
				fields["clean_build"] = true
			}
			if msg.CopyAssets {
				fields["copy_assets"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
