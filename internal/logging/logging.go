package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

const (
	rootModule      = "configdocs"
	directiveModule = "configdocs.directive"
	domainModule    = "configdocs.domain"
	builderModule   = "configdocs.builder"
	documentsModule = "configdocs.documents"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// DirectiveLogger returns the logger namespace reserved for directive execution.
func DirectiveLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, directiveModule)
}

// DomainLogger returns the logger namespace reserved for registry and resolution.
func DomainLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, domainModule)
}

// BuilderLogger returns the logger namespace reserved for build sessions.
func BuilderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, builderModule)
}

// DocumentsLogger returns the logger namespace reserved for document loading.
func DocumentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentsModule)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
