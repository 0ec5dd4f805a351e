package state

// Environment variables consulted for the state directory prefix.
const (
	EnvStatePath = "MP_STATE_PATH"

	// EnvLegacyStateDirectory is the former name of EnvStatePath.
	EnvLegacyStateDirectory = "NAGIOS_PLUGIN_STATE_DIRECTORY"
)

// DefaultPrefix is used when no environment override applies. Packagers
// set it at link time:
//
//	go build -ldflags "-X github.com/jonwraymond/checkops/state.DefaultPrefix=/var/lib/nagios"
var DefaultPrefix = "/var/lib/monitoring-plugins"

// ResolvePrefix returns the state directory prefix. Unless privileged, the
// first non-empty value of EnvStatePath and EnvLegacyStateDirectory wins.
// A privileged process always gets DefaultPrefix so that a caller cannot
// redirect its writes.
func ResolvePrefix(lookup func(string) (string, bool), privileged bool) string {
	if !privileged && lookup != nil {
		for _, name := range []string{EnvStatePath, EnvLegacyStateDirectory} {
			if v, ok := lookup(name); ok && v != "" {
				return v
			}
		}
	}
	return DefaultPrefix
}
