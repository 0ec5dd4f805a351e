package observe

// PluginMeta describes a check plugin for telemetry purposes.
type PluginMeta struct {
	Name    string // Plugin name, e.g. check_value (required)
	Label   string // Label of the measured quantity (optional)
	Version string // Plugin version (optional)
}

// SpanName returns the deterministic span name for this plugin.
// Format: check.<name>.<label> or check.<name>
func (m PluginMeta) SpanName() string {
	return "check." + m.CheckID()
}

// CheckID identifies the check within its plugin.
func (m PluginMeta) CheckID() string {
	if m.Label != "" {
		return m.Name + "." + m.Label
	}
	return m.Name
}

// Validate reports ErrMissingPluginName when Name is empty.
func (m PluginMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingPluginName
	}
	return nil
}
