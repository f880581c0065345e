package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/iwvelando/cost-forecast/internal/billing"
	"github.com/iwvelando/cost-forecast/pkg/datetime"
)

func period(start, end string) billing.Period {
	return billing.NewPeriod(
		datetime.MustParseTime(datetime.DateLayout, start),
		datetime.MustParseTime(datetime.DateLayout, end),
	)
}

func TestFakeBilling(t *testing.T) {
	failure := errors.New("boom")
	fake := &FakeBilling{
		Forecast:   42,
		Actuals:    map[string]float64{"2026-09-01": 7},
		ActualErrs: map[string]error{"2026-10-01": failure},
	}
	ctx := context.Background()

	if got, err := fake.ForecastCost(ctx, period("2026-10-20", "2026-11-01")); err != nil || got != 42 {
		t.Errorf("ForecastCost() = %v, %v", got, err)
	}
	if got, err := fake.ActualCost(ctx, period("2026-09-01", "2026-09-30")); err != nil || got != 7 {
		t.Errorf("ActualCost() = %v, %v", got, err)
	}
	if _, err := fake.ActualCost(ctx, period("2026-10-01", "2026-10-19")); !errors.Is(err, failure) {
		t.Errorf("ActualCost() error = %v, expected %v", err, failure)
	}

	if len(fake.Calls) != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", len(fake.Calls))
	}
	if fake.Calls[0].Method != "forecast" || fake.Calls[1].Method != "actual" {
		t.Errorf("unexpected call order: %+v", fake.Calls)
	}
}

func TestFakeBillingActualErr(t *testing.T) {
	failure := errors.New("denied")
	fake := &FakeBilling{ActualErr: failure, Actuals: map[string]float64{"2026-09-01": 7}}

	if _, err := fake.ActualCost(context.Background(), period("2026-09-01", "2026-09-30")); !errors.Is(err, failure) {
		t.Errorf("ActualCost() error = %v, expected %v", err, failure)
	}
}
