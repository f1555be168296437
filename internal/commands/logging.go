package commands

import (
	"cmp"
	"strings"

	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

const commandModuleRoot = "contentkit.commands"

// CommandLogger returns the logger for one command module, namespaced under
// the commands root and tagged so executions can be filtered by module.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := cmp.Or(strings.TrimSpace(module), "core")
	return logging.WithFields(
		logging.ModuleLogger(provider, commandModuleRoot+"."+name),
		map[string]any{
			"component":      "command",
			"command_module": name,
		},
	)
}
