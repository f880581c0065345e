// Package constants provides shared constants for the cost-forecast application.
package constants

// DateLayout is the date format Cost Explorer expects for time periods.
const DateLayout = "2006-01-02"

// Run types accepted by --type.
const (
	// RunTypeForecast prints the month-end forecast line.
	RunTypeForecast = "FORECAST"

	// RunTypeActuals is accepted on the command line but not implemented.
	RunTypeActuals = "ACTUALS"
)

// Cost Explorer query constants
const (
	// BlendedCostMetric is the metric name used by GetCostAndUsage.
	BlendedCostMetric = "BlendedCost"

	// RecordTypeCredit and RecordTypeRefund are excluded from every query.
	RecordTypeCredit = "Credit"
	RecordTypeRefund = "Refund"
)

// Labels accompanying the current period amount.
const (
	LabelForecast    = "Forecast"
	LabelActuals     = "Actuals(MTD - not enough data to forecast)"
	LabelUnavailable = "Error cannot calculate forecast"
)

// Configuration defaults
const (
	// DefaultRegion is Cost Explorer's home region.
	DefaultRegion = "us-east-1"

	// DefaultMinutes is the default for the --minutes flag.
	DefaultMinutes = 30

	// DefaultLogFile mirrors every log line to this file.
	DefaultLogFile = "info.log"

	// DefaultLogLevel and DefaultLogFormat apply when nothing overrides them.
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	// EnvPrefix prefixes environment variable overrides, e.g. COST_FORECAST_REGION.
	EnvPrefix = "COST_FORECAST"
)

// PercentageMultiplier is used for percentage conversions
const PercentageMultiplier = 100.0
