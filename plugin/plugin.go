package plugin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonwraymond/checkops/health"
	"github.com/jonwraymond/checkops/observe"
	"github.com/jonwraymond/checkops/state"
	"github.com/jonwraymond/checkops/status"
	"github.com/jonwraymond/checkops/threshold"
)

// Plugin is the context of one plugin invocation.
//
// Contract:
//   - Concurrency: not safe for concurrent mutation; configure it before
//     calling Run.
//   - Errors: methods return errors and never exit, except Exit, Die and
//     Fatal.
type Plugin struct {
	meta        observe.PluginMeta
	argv        []string
	threshold   threshold.Threshold
	perfdata    []Perfdata
	storeConfig state.StoreConfig
	store       *state.Store
	key         *state.Key
	logger      observe.Logger
	middleware  *observe.Middleware
	out         io.Writer
	exit        func(int)
	timeout     time.Duration
}

// New creates the context for plugin name invoked with argv. argv is the
// full argument vector including the program path, as used to derive
// state keys.
func New(name string, argv []string, opts ...Option) (*Plugin, error) {
	p := &Plugin{
		meta:   observe.PluginMeta{Name: name},
		argv:   append([]string(nil), argv...),
		logger: observe.NopLogger(),
		out:    os.Stdout,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.meta.Validate(); err != nil {
		return nil, err
	}

	p.logger = p.logger.WithPlugin(p.meta)
	if p.middleware == nil {
		p.middleware = observe.NewMiddleware(nil, nil, p.logger)
	}
	return p, nil
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return p.meta.Name
}

// Meta returns the telemetry identity of the plugin.
func (p *Plugin) Meta() observe.PluginMeta {
	return p.meta
}

// Logger returns the plugin-scoped logger.
func (p *Plugin) Logger() observe.Logger {
	return p.logger
}

// SetThresholds parses and installs the warning and critical ranges. An
// empty expression leaves that level unset.
func (p *Plugin) SetThresholds(warning, critical string) error {
	th, err := threshold.New(warning, critical)
	if err != nil {
		return err
	}
	p.threshold = th
	return nil
}

// Thresholds returns the installed thresholds.
func (p *Plugin) Thresholds() threshold.Threshold {
	return p.threshold
}

// Classify maps value to a level using the installed thresholds.
func (p *Plugin) Classify(value float64) status.Level {
	return p.threshold.Classify(value)
}

// AddPerfdata appends a performance data item to the output.
func (p *Plugin) AddPerfdata(pd Perfdata) {
	p.perfdata = append(p.perfdata, pd)
}

// EnableState opens the state store and derives the key for this
// invocation. An empty keyName derives the name from argv.
func (p *Plugin) EnableState(keyName string, dataVersion int) error {
	if p.store == nil {
		cfg := p.storeConfig
		if cfg.Logger == nil {
			cfg.Logger = p.logger
		}
		store, err := state.NewStore(cfg)
		if err != nil {
			return err
		}
		p.store = store
	}

	key, err := p.store.NewKey(p.meta.Name, keyName, dataVersion, p.argv)
	if err != nil {
		return err
	}
	p.key = &key
	return nil
}

// StateKey returns the key installed by EnableState.
func (p *Plugin) StateKey() (state.Key, bool) {
	if p.key == nil {
		return state.Key{}, false
	}
	return *p.key, true
}

// ReadState returns the previously stored record, or nil when there is
// no usable state.
func (p *Plugin) ReadState(ctx context.Context) (*state.Record, error) {
	if p.key == nil {
		return nil, ErrStateNotEnabled
	}
	rec, ok := p.store.Read(ctx, *p.key)
	if !ok {
		return nil, nil
	}
	return rec, nil
}

// WriteState stores payload with timestamp ts. A zero ts means now.
func (p *Plugin) WriteState(ctx context.Context, ts time.Time, payload string) error {
	if p.key == nil {
		return ErrStateNotEnabled
	}
	return p.store.Write(ctx, *p.key, ts, payload)
}

// Run executes checker through the middleware and returns its result.
// With a timeout set, a checker that has not returned in time yields an
// UNKNOWN result wrapping ErrTimeout.
func (p *Plugin) Run(ctx context.Context, checker health.Checker) health.Result {
	if checker == nil {
		return health.Unknown(ErrNilChecker.Error(), ErrNilChecker)
	}

	var result health.Result
	run := p.middleware.Wrap(func(ctx context.Context, meta observe.PluginMeta) (status.Level, error) {
		result = p.check(ctx, checker)
		return result.Status, result.Error
	})
	_, _ = run(ctx, p.meta)
	return result
}

func (p *Plugin) check(ctx context.Context, checker health.Checker) health.Result {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan health.Result, 1)
	go func() {
		done <- checker.Check(ctx)
	}()

	select {
	case result := <-done:
		if result.Duration == 0 {
			result.Duration = time.Since(start)
		}
		return result
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrTimeout
		}
		msg := timeoutMessage(p.timeout)
		if !errors.Is(err, ErrTimeout) {
			msg = err.Error()
		}
		return health.Unknown(msg, err).WithDuration(time.Since(start))
	}
}

func timeoutMessage(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("Plugin timed out after %d seconds", int(d.Seconds()))
	}
	return fmt.Sprintf("Plugin timed out after %s", d)
}

// Exit prints result and terminates with its level's exit code.
func (p *Plugin) Exit(result health.Result) {
	p.print(result.Status, result.Message)
	p.exit(result.Status.ExitCode())
}

// Die prints a formatted message at level and terminates.
func (p *Plugin) Die(level status.Level, format string, args ...any) {
	p.Exit(health.NewResult(level, fmt.Sprintf(format, args...)))
}

// Fatal logs err and terminates with UNKNOWN.
func (p *Plugin) Fatal(err error) {
	p.logger.Error(context.Background(), "fatal error", observe.Field{Key: "error", Value: err})
	p.Die(status.Unknown, "%s", err)
}

func (p *Plugin) print(level status.Level, message string) {
	var b strings.Builder
	b.WriteString(level.String())
	if message != "" {
		b.WriteString(" - ")
		b.WriteString(message)
	}
	if len(p.perfdata) > 0 {
		b.WriteString(" |")
		for _, pd := range p.perfdata {
			b.WriteByte(' ')
			b.WriteString(pd.String())
		}
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(p.out, b.String())
}
