package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonwraymond/checkops/extract"
	"github.com/jonwraymond/checkops/health"
	"github.com/jonwraymond/checkops/internal/numscan"
	"github.com/jonwraymond/checkops/plugin"
)

// maxInput bounds how much of standard input is scanned for --key.
const maxInput = 64 << 10

var (
	errMissingValue = errors.New("no value given, pass VALUE or --key")
	errKeyNotFound  = errors.New("key not found in input")
	errNotANumber   = errors.New("not a number")
)

// valueSource returns the function producing the measured value, either
// from the positional argument or from key=value pairs on stdin.
func valueSource(cli *CLI, stdin io.Reader) health.ValueFunc {
	if cli.Key == "" {
		return func(context.Context) (float64, error) {
			return parseNumber(cli.Value)
		}
	}

	return func(context.Context) (float64, error) {
		data, err := io.ReadAll(io.LimitReader(stdin, maxInput))
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		raw, ok := extract.Value(string(data), cli.Key, cli.Separator[0])
		if !ok {
			return 0, fmt.Errorf("%w: %s", errKeyNotFound, cli.Key)
		}
		return parseNumber(raw)
	}
}

// parseNumber reads the leading number of s, ignoring a trailing unit.
func parseNumber(s string) (float64, error) {
	v, n := numscan.Float(s)
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", errNotANumber, s)
	}
	return v, nil
}

// newRateChecker classifies the per-second change of value between this
// run and the previous one, then stores the current value.
func newRateChecker(p *plugin.Plugin, label, unit string, value health.ValueFunc, now func() time.Time) health.Checker {
	return health.NewCheckerFunc(label+"_rate", func(ctx context.Context) health.Result {
		v, err := value(ctx)
		if err != nil {
			return health.Unknown(fmt.Sprintf("%s: %v", label, err), err)
		}

		// State timestamps have whole second resolution.
		ts := now().Truncate(time.Second)
		prev, err := p.ReadState(ctx)
		if err != nil {
			return health.Unknown(err.Error(), err)
		}
		if err := p.WriteState(ctx, ts, health.FormatValue(v)); err != nil {
			return health.Unknown(err.Error(), err)
		}

		if prev == nil {
			return health.OK(label + ": no previous state, rate available on the next run")
		}
		pv, err := parseNumber(strings.TrimSpace(prev.Payload))
		if err != nil {
			return health.OK(label + ": previous state unusable, rate available on the next run")
		}

		elapsed := ts.Sub(prev.Timestamp).Seconds()
		if elapsed <= 0 {
			return health.Unknown(label+": no time elapsed since the previous run", nil)
		}

		rate := (v - pv) / elapsed
		level := p.Classify(rate)
		return health.NewResult(level, fmt.Sprintf("%s %s%s/s", label, health.FormatValue(rate), unit)).
			WithDetails(map[string]any{
				"value":    rate,
				"previous": pv,
				"current":  v,
				"elapsed":  elapsed,
			})
	})
}
