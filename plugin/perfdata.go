package plugin

import (
	"strings"

	"github.com/jonwraymond/checkops/health"
	"github.com/jonwraymond/checkops/threshold"
)

// Perfdata is one performance data item appended to the plugin output.
type Perfdata struct {
	Label     string
	Value     float64
	Unit      string
	Threshold threshold.Threshold
}

// String renders the item as 'label'=value[unit];warn;crit.
func (p Perfdata) String() string {
	var b strings.Builder
	b.WriteString(quoteLabel(p.Label))
	b.WriteByte('=')
	b.WriteString(health.FormatValue(p.Value))
	b.WriteString(p.Unit)
	if !p.Threshold.IsZero() {
		b.WriteByte(';')
		b.WriteString(p.Threshold.String())
	}
	return b.String()
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, " '=") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
