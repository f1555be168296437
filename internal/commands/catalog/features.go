package catalogcmd

// FeatureGates exposes runtime feature toggles required by catalog command
// handlers. Callers supply closures reading from configuration so handlers
// stay decoupled from it.
type FeatureGates struct {
	CommandsEnabled func() bool
}

func (g FeatureGates) commandsEnabled() bool {
	if g.CommandsEnabled == nil {
		return true
	}
	return g.CommandsEnabled()
}
