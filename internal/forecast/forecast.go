// Package forecast computes the month-end spend forecast line and its change
// against the prior month.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/iwvelando/cost-forecast/internal/billing"
	"github.com/iwvelando/cost-forecast/pkg/constants"
	"github.com/iwvelando/cost-forecast/pkg/datetime"
	"github.com/iwvelando/cost-forecast/pkg/format"
	"github.com/iwvelando/cost-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Source records which query produced an amount.
type Source int

const (
	// SourceUnavailable means every query for the amount failed.
	SourceUnavailable Source = iota
	// SourceForecast means Cost Explorer produced a forecast.
	SourceForecast
	// SourceActuals means the forecast failed and month-to-date actuals were used.
	SourceActuals
)

// Label is the text printed in front of the amount.
func (s Source) Label() string {
	switch s {
	case SourceForecast:
		return constants.LabelForecast
	case SourceActuals:
		return constants.LabelActuals
	default:
		return constants.LabelUnavailable
	}
}

func (s Source) String() string {
	switch s {
	case SourceForecast:
		return "forecast"
	case SourceActuals:
		return "actuals"
	default:
		return "unavailable"
	}
}

// Outcome is the result of one query wrapper. Err is set only when Source is
// SourceUnavailable, in which case Amount is zero.
type Outcome struct {
	Amount float64
	Source Source
	Period billing.Period
	Err    error
}

// OK reports whether the outcome carries a real amount.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report holds both amounts and the derived percentage.
type Report struct {
	Current       Outcome
	Prior         Outcome
	PercentChange float64
}

// String formats the report as "<label>: $<amount> (<+pct>%)".
func (r Report) String() string {
	return fmt.Sprintf("%s: %s (%s)",
		r.Current.Source.Label(),
		format.WholeCurrency(r.Current.Amount),
		format.SignedPercent(r.PercentChange),
	)
}

// Calculator derives the forecast report from a billing client.
type Calculator struct {
	logger *zap.Logger
	client billing.Client
	now    func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock overrides the clock used to derive query windows.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

// NewCalculator returns a Calculator querying client. The default clock is
// the system clock in UTC.
func NewCalculator(logger *zap.Logger, client billing.Client, opts ...Option) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Calculator{
		logger: logger,
		client: client,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForecastWindow returns the forecast query window for now: it starts
// tomorrow (or the coming Monday from Friday through Sunday) and ends on the
// first of next month.
func ForecastWindow(now time.Time) billing.Period {
	return billing.NewPeriod(datetime.ForecastStart(now), datetime.FirstOfNextMonth(now))
}

// MonthToDateWindow returns the first of the current month through today.
func MonthToDateWindow(now time.Time) billing.Period {
	return billing.NewPeriod(datetime.MonthToDate(now))
}

// PriorMonthWindow returns the first through the last day of the prior month.
func PriorMonthWindow(now time.Time) billing.Period {
	return billing.NewPeriod(datetime.PriorMonth(now))
}

// Calculate queries the current period and the prior month and derives the
// report. It never returns an error: failed queries degrade to zero amounts
// and are logged.
func (c *Calculator) Calculate(ctx context.Context) Report {
	now := c.now()

	current := c.currentPeriod(ctx, now)
	prior := c.priorMonth(ctx, now)

	report := Report{
		Current:       current,
		Prior:         prior,
		PercentChange: mathutil.InvertedChange(prior.Amount, current.Amount),
	}

	c.logger.Debug("forecast calculated",
		zap.String("op", "forecast.Calculate"),
		zap.Stringer("source", current.Source),
		zap.Float64("current", current.Amount),
		zap.Float64("prior", prior.Amount),
		zap.Float64("pctChange", report.PercentChange),
	)

	return report
}

func (c *Calculator) currentPeriod(ctx context.Context, now time.Time) Outcome {
	window := ForecastWindow(now)
	amount, err := c.client.ForecastCost(ctx, window)
	if err == nil {
		return Outcome{Amount: amount, Source: SourceForecast, Period: window}
	}

	// New accounts and the last days of a month often have too little data
	// for a forecast.
	c.logger.Warn("cannot forecast, falling back to actuals",
		zap.String("op", "forecast.currentPeriod"),
		zap.Stringer("period", window),
		zap.Error(err),
	)

	window = MonthToDateWindow(now)
	amount, err = c.client.ActualCost(ctx, window)
	if err == nil {
		return Outcome{Amount: amount, Source: SourceActuals, Period: window}
	}

	c.logger.Error("failed to calculate current month",
		zap.String("op", "forecast.currentPeriod"),
		zap.Stringer("period", window),
		zap.Error(err),
	)
	return Outcome{Source: SourceUnavailable, Period: window, Err: err}
}

func (c *Calculator) priorMonth(ctx context.Context, now time.Time) Outcome {
	window := PriorMonthWindow(now)
	amount, err := c.client.ActualCost(ctx, window)
	if err != nil {
		c.logger.Error("failed to calculate prior month",
			zap.String("op", "forecast.priorMonth"),
			zap.Stringer("period", window),
			zap.Error(err),
		)
		return Outcome{Source: SourceUnavailable, Period: window, Err: err}
	}
	return Outcome{Amount: amount, Source: SourceActuals, Period: window}
}
