package commands

import (
	"strings"

	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

const commandModuleRoot = "configdocs.commands"

// CommandLogger returns a module-scoped logger for command handlers with
// consistent structured fields across executions.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
