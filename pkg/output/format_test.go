package output

import (
	"bytes"
	"testing"

	"github.com/iwvelando/cost-forecast/internal/forecast"
)

func TestPrettyFormat(t *testing.T) {
	tests := []struct {
		name     string
		report   forecast.Report
		expected string
	}{
		{
			name: "Forecast",
			report: forecast.Report{
				Current:       forecast.Outcome{Amount: 12345.2, Source: forecast.SourceForecast},
				Prior:         forecast.Outcome{Amount: 11943.9, Source: forecast.SourceActuals},
				PercentChange: 3.25,
			},
			expected: "Forecast: $12,345 (+3.25%)\n",
		},
		{
			name: "Actuals fallback with falling spend",
			report: forecast.Report{
				Current:       forecast.Outcome{Amount: 800, Source: forecast.SourceActuals},
				PercentChange: -25,
			},
			expected: "Actuals(MTD - not enough data to forecast): $800 (-25.00%)\n",
		},
		{
			name:     "Unavailable",
			report:   forecast.Report{},
			expected: "Error cannot calculate forecast: $0 (+0.00%)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PrettyFormat(&buf, tt.report); err != nil {
				t.Fatalf("PrettyFormat() error = %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("PrettyFormat() = %q, expected %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestInvalidRunType(t *testing.T) {
	var buf bytes.Buffer
	if err := InvalidRunType(&buf, "DAILY", "FORECAST", "ACTUALS"); err != nil {
		t.Fatalf("InvalidRunType() error = %v", err)
	}
	expected := "Invalid run type: DAILY . Please choose from: FORECAST, ACTUALS\n"
	if buf.String() != expected {
		t.Errorf("InvalidRunType() = %q, expected %q", buf.String(), expected)
	}
}
