package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/jonwraymond/checkops/health"
	"github.com/jonwraymond/checkops/threshold"
)

func ExampleNewThresholdChecker() {
	th, _ := threshold.New("80", "90")

	checker, _ := health.NewThresholdChecker(health.ThresholdCheckerConfig{
		Name:      "disk_usage",
		Label:     "disk /var",
		Unit:      "%",
		Threshold: th,
		Value: func(ctx context.Context) (float64, error) {
			return 85, nil
		},
	})

	result := checker.Check(context.Background())
	fmt.Println(result.Status, "-", result.Message)
	fmt.Println("Exit code:", result.Status.ExitCode())
	// Output:
	// WARNING - disk /var 85%
	// Exit code: 1
}

func ExampleNewCheckerFunc() {
	dns := health.NewCheckerFunc("dns", func(ctx context.Context) health.Result {
		return health.Unknown("resolver unreachable", errors.New("i/o timeout"))
	})

	result := dns.Check(context.Background())

	fmt.Println("Checker name:", dns.Name())
	fmt.Println("Status:", result.Status)
	fmt.Println("Error:", result.Error)
	// Output:
	// Checker name: dns
	// Status: UNKNOWN
	// Error: i/o timeout
}

func ExampleResult_WithDetails() {
	result := health.Critical("3 of 4 workers down").WithDetails(map[string]any{
		"workers": 4,
		"alive":   1,
	})

	fmt.Println("Status:", result.Status)
	fmt.Println("Alive:", result.Details["alive"])
	// Output:
	// Status: CRITICAL
	// Alive: 1
}

func ExampleAggregator_OverallStatus() {
	agg := health.NewAggregator()
	agg.Register("load", health.NewCheckerFunc("load", func(ctx context.Context) health.Result {
		return health.Warning("load 4.2")
	}))
	agg.Register("ntp", health.NewCheckerFunc("ntp", func(ctx context.Context) health.Result {
		return health.Unknown("no peers", nil)
	}))
	agg.Register("disk", health.NewCheckerFunc("disk", func(ctx context.Context) health.Result {
		return health.OK("disk 10%")
	}))

	results := agg.CheckAll(context.Background())
	fmt.Println("Checks:", agg.CheckerNames())
	fmt.Println("Overall:", agg.OverallStatus(results))
	// Output:
	// Checks: [load ntp disk]
	// Overall: WARNING
}

func ExampleAggregator_Checker() {
	agg := health.NewAggregator()
	agg.Register("a", health.NewCheckerFunc("a", func(ctx context.Context) health.Result {
		return health.OK("fine")
	}))
	agg.Register("b", health.NewCheckerFunc("b", func(ctx context.Context) health.Result {
		return health.Critical("down")
	}))

	result := agg.Checker().Check(context.Background())
	fmt.Println(result.Status, "-", result.Message)
	// Output:
	// CRITICAL - 2 checks: 1 ok, 0 warning, 1 critical, 0 unknown, 0 dependent
}

func ExampleDetailedHandler() {
	agg := health.NewAggregator()
	agg.Register("disk", health.NewCheckerFunc("disk", func(ctx context.Context) health.Result {
		return health.OK("disk 10%")
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	health.DetailedHandler(agg)(rec, req)

	var response health.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &response)

	fmt.Println("HTTP:", rec.Code)
	fmt.Println("Status:", response.Status)
	fmt.Println("Disk:", response.Checks["disk"].Message)
	// Output:
	// HTTP: 200
	// Status: OK
	// Disk: disk 10%
}
