// Package testutil provides common utility functions for testing.
package testutil

import (
	"context"

	"github.com/iwvelando/cost-forecast/internal/billing"
	"github.com/iwvelando/cost-forecast/pkg/datetime"
)

// Call records one query made against a FakeBilling.
type Call struct {
	Method string
	Period billing.Period
}

// FakeBilling is a billing.Client answering from fixed values. ActualCost
// results are keyed by the period's start date in YYYY-MM-DD form.
type FakeBilling struct {
	Forecast    float64
	ForecastErr error
	Actuals     map[string]float64
	ActualErrs  map[string]error
	// ActualErr, when set, fails every ActualCost call.
	ActualErr error

	Calls []Call
}

var _ billing.Client = (*FakeBilling)(nil)

// ForecastCost records the call and returns Forecast or ForecastErr.
func (f *FakeBilling) ForecastCost(_ context.Context, period billing.Period) (float64, error) {
	f.Calls = append(f.Calls, Call{Method: "forecast", Period: period})
	if f.ForecastErr != nil {
		return 0, f.ForecastErr
	}
	return f.Forecast, nil
}

// ActualCost records the call and answers from Actuals.
func (f *FakeBilling) ActualCost(_ context.Context, period billing.Period) (float64, error) {
	f.Calls = append(f.Calls, Call{Method: "actual", Period: period})
	if f.ActualErr != nil {
		return 0, f.ActualErr
	}
	start := datetime.Format(period.Start)
	if err, ok := f.ActualErrs[start]; ok {
		return 0, err
	}
	return f.Actuals[start], nil
}
