package plugin

import (
	"testing"

	"github.com/jonwraymond/checkops/threshold"
)

func TestPerfdata_String(t *testing.T) {
	th, err := threshold.New("80", "~:90")
	if err != nil {
		t.Fatalf("threshold.New() error = %v", err)
	}
	crit, err := threshold.New("", "5")
	if err != nil {
		t.Fatalf("threshold.New() error = %v", err)
	}

	tests := []struct {
		name string
		pd   Perfdata
		want string
	}{
		{"bare", Perfdata{Label: "load1", Value: 0.5}, "load1=0.5"},
		{"unit", Perfdata{Label: "disk", Value: 85, Unit: "%"}, "disk=85%"},
		{"thresholds", Perfdata{Label: "disk", Value: 85, Unit: "%", Threshold: th}, "disk=85%;80;~:90"},
		{"critical only", Perfdata{Label: "procs", Value: 3, Threshold: crit}, "procs=3;;5"},
		{"quoted label", Perfdata{Label: "used space", Value: 1}, "'used space'=1"},
		{"escaped quote", Perfdata{Label: "it's", Value: 1}, "'it''s'=1"},
		{"negative", Perfdata{Label: "offset", Value: -0.25, Unit: "s"}, "offset=-0.25s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
