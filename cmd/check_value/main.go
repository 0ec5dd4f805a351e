// Command check_value classifies a number against warning and critical
// ranges and reports the result as a monitoring plugin.
//
//	check_value --warning 80 --critical 90 85
//	echo "offset=0.25, jitter=3" | check_value --key jitter -w 2 -c 5
//	check_value --rate --state-key eth0_rx -w 1e6 -c 1e7 "$(cat /sys/class/net/eth0/statistics/rx_bytes)"
//
// The process exits with the status level's code: 0 OK, 1 WARNING,
// 2 CRITICAL, 3 UNKNOWN.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonwraymond/checkops/health"
	"github.com/jonwraymond/checkops/observe"
	"github.com/jonwraymond/checkops/plugin"
	"github.com/jonwraymond/checkops/state"
	"github.com/jonwraymond/checkops/status"
)

const (
	pluginName = "check_value"

	// stateDataVersion is bumped when the payload layout changes.
	stateDataVersion = 1
)

var version = "dev"

// CLI is the command line of check_value.
type CLI struct {
	Warning   string `short:"w" help:"Warning range, e.g. 80, 10:20, @0:5. Use --warning=-5 for negative values." placeholder:"RANGE"`
	Critical  string `short:"c" help:"Critical range." placeholder:"RANGE"`
	Label     string `short:"l" help:"Label of the measured value." default:"value"`
	Unit      string `short:"u" help:"Unit printed after the value."`
	Key       string `short:"k" help:"Read the value of this key from key=value pairs on standard input."`
	Separator string `help:"Separator between key=value pairs on standard input." default:","`

	Rate     bool          `help:"Classify the per-second rate of change since the previous run."`
	StateKey string        `name:"state-key" help:"State key name. Derived from the arguments when empty."`
	StateDir string        `name:"state-dir" help:"State directory prefix. Defaults to MP_STATE_PATH or the built-in location."`
	Timeout  time.Duration `short:"t" help:"Time before the check is abandoned as UNKNOWN, e.g. 10s." default:"10s"`

	LogLevel        string           `name:"log-level" help:"Diagnostic log level on stderr." enum:"debug,info,warn,error" default:"error"`
	TraceExporter   string           `name:"trace-exporter" help:"Span exporter." enum:"none,stdout,otlp,jaeger" default:"none"`
	MetricsExporter string           `name:"metrics-exporter" help:"Metrics exporter." enum:"none,stdout,otlp,prometheus" default:"none"`
	MetricsTextfile string           `name:"metrics-textfile" help:"Write Prometheus metrics to this file for a textfile collector."`
	Version         kong.VersionFlag `name:"version" help:"Show version and exit."`

	Value string `arg:"" optional:"" help:"Value to classify. Required unless --key is set."`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if len(c.Separator) != 1 {
		return fmt.Errorf("--separator must be a single byte, got %q", c.Separator)
	}
	if c.Key == "" && c.Value == "" {
		return errMissingValue
	}
	if c.Key != "" && c.Value != "" {
		return fmt.Errorf("VALUE and --key are mutually exclusive")
	}
	return nil
}

// env carries the process surroundings so tests can replace them.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)
	now    func() time.Time
}

func main() {
	os.Exit(run(context.Background(), os.Args, env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookup: os.LookupEnv,
		now:    time.Now,
	}))
}

// run executes one invocation and returns the exit code.
func run(ctx context.Context, args []string, e env) int {
	code := -1
	exit := func(c int) {
		if code < 0 {
			code = c
		}
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(pluginName),
		kong.Description("Classify a value against warning and critical ranges."),
		kong.Vars{"version": version},
		kong.Writers(e.stdout, e.stderr),
		kong.Exit(exit),
	)
	if err != nil {
		return unknown(e.stdout, err)
	}
	_, err = parser.Parse(args[1:])
	if code >= 0 {
		// --help or --version
		return code
	}
	if err != nil {
		return unknown(e.stdout, err)
	}

	var (
		reg        *prometheus.Registry
		registerer prometheus.Registerer
	)
	metricsExporter := cli.MetricsExporter
	if cli.MetricsTextfile != "" {
		reg = prometheus.NewRegistry()
		registerer = reg
		metricsExporter = "prometheus"
	}

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: pluginName,
		Version:     version,
		Tracing: observe.TracingConfig{
			Enabled:   cli.TraceExporter != "none",
			Exporter:  cli.TraceExporter,
			SamplePct: 1.0,
		},
		Metrics: observe.MetricsConfig{
			Enabled:    metricsExporter != "none",
			Exporter:   metricsExporter,
			Registerer: registerer,
		},
		Logging: observe.LoggingConfig{Enabled: true, Level: cli.LogLevel},
		Output:  e.stderr,
	})
	if err != nil {
		return unknown(e.stdout, err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(sctx); err != nil {
			obs.Logger().Warn(sctx, "telemetry shutdown failed", observe.Field{Key: "error", Value: err})
		}
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return unknown(e.stdout, err)
	}

	p, err := plugin.New(pluginName, keyArgs(args, cli.Value),
		plugin.WithLabel(cli.Label),
		plugin.WithVersion(version),
		plugin.WithLogger(obs.Logger()),
		plugin.WithMiddleware(mw),
		plugin.WithOutput(e.stdout),
		plugin.WithExitFunc(exit),
		plugin.WithTimeout(cli.Timeout),
		plugin.WithStoreConfig(state.StoreConfig{
			Prefix: cli.StateDir,
			Lookup: e.lookup,
			Clock:  e.now,
		}),
	)
	if err != nil {
		return unknown(e.stdout, err)
	}

	if err := p.SetThresholds(cli.Warning, cli.Critical); err != nil {
		p.Fatal(err)
		return code
	}

	value := valueSource(&cli, e.stdin)

	var checker health.Checker
	if cli.Rate {
		if err := p.EnableState(cli.StateKey, stateDataVersion); err != nil {
			p.Fatal(err)
			return code
		}
		checker = newRateChecker(p, cli.Label, cli.Unit, value, e.now)
	} else {
		checker, err = health.NewThresholdChecker(health.ThresholdCheckerConfig{
			Name:      cli.Label,
			Label:     cli.Label,
			Unit:      cli.Unit,
			Threshold: p.Thresholds(),
			Value:     value,
		})
		if err != nil {
			p.Fatal(err)
			return code
		}
	}

	result := p.Run(ctx, checker)
	if v, ok := result.Details["value"].(float64); ok {
		unit := cli.Unit
		if cli.Rate {
			unit = ""
		}
		p.AddPerfdata(plugin.Perfdata{Label: cli.Label, Value: v, Unit: unit, Threshold: p.Thresholds()})
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(cli.MetricsTextfile, reg); err != nil {
			p.Logger().Warn(ctx, "cannot write metrics textfile",
				observe.Field{Key: "path", Value: cli.MetricsTextfile},
				observe.Field{Key: "error", Value: err},
			)
		}
	}

	p.Exit(result)
	return code
}

// keyArgs drops the positional value from args so successive runs with
// changing values derive the same state key.
func keyArgs(args []string, value string) []string {
	if value == "" {
		return args
	}
	for i := len(args) - 1; i > 0; i-- {
		if args[i] == value {
			out := make([]string, 0, len(args)-1)
			out = append(out, args[:i]...)
			return append(out, args[i+1:]...)
		}
	}
	return args
}

func unknown(w io.Writer, err error) int {
	_, _ = fmt.Fprintf(w, "%s - %v\n", status.Unknown, err)
	return status.Unknown.ExitCode()
}
