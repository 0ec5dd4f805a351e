package plugin

import (
	"io"
	"time"

	"github.com/jonwraymond/checkops/observe"
	"github.com/jonwraymond/checkops/state"
)

// Option configures a Plugin.
type Option func(*Plugin)

// WithLabel sets the check label used in telemetry to tell apart several
// instances of the same plugin.
func WithLabel(label string) Option {
	return func(p *Plugin) {
		p.meta.Label = label
	}
}

// WithVersion sets the plugin version reported in telemetry.
func WithVersion(version string) Option {
	return func(p *Plugin) {
		p.meta.Version = version
	}
}

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(logger observe.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMiddleware sets the middleware Run wraps checks with. Defaults to a
// middleware that only logs.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(p *Plugin) {
		p.middleware = mw
	}
}

// WithStoreConfig configures the state store created by EnableState.
// A nil Logger in cfg is replaced by the plugin logger.
func WithStoreConfig(cfg state.StoreConfig) Option {
	return func(p *Plugin) {
		p.storeConfig = cfg
	}
}

// WithOutput sets where Exit prints the result line. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Plugin) {
		if w != nil {
			p.out = w
		}
	}
}

// WithExitFunc replaces os.Exit.
func WithExitFunc(exit func(int)) Option {
	return func(p *Plugin) {
		if exit != nil {
			p.exit = exit
		}
	}
}

// WithTimeout bounds how long Run waits for a checker. Zero disables the
// bound.
func WithTimeout(d time.Duration) Option {
	return func(p *Plugin) {
		p.timeout = d
	}
}
