// Package billing queries AWS Cost Explorer for forecast and actual blended
// cost, excluding credits and refunds.
package billing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/iwvelando/cost-forecast/pkg/constants"
	"github.com/iwvelando/cost-forecast/pkg/datetime"
	"go.uber.org/zap"
)

// ErrNoData is returned when Cost Explorer answers without a usable total.
var ErrNoData = errors.New("cost explorer returned no data")

// Period is a query window sent to Cost Explorer as YYYY-MM-DD dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds a Period from two dates.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

func (p Period) String() string {
	return fmt.Sprintf("start_time=%s end_time=%s", datetime.Format(p.Start), datetime.Format(p.End))
}

func (p Period) dateInterval() *types.DateInterval {
	return &types.DateInterval{
		Start: aws.String(datetime.Format(p.Start)),
		End:   aws.String(datetime.Format(p.End)),
	}
}

// Client is the billing-query capability consumed by the forecast calculator.
type Client interface {
	// ForecastCost returns the monthly blended cost forecast for the period.
	ForecastCost(ctx context.Context, period Period) (float64, error)
	// ActualCost returns the blended cost incurred over the period.
	ActualCost(ctx context.Context, period Period) (float64, error)
}

// CostExplorerAPI is the subset of *costexplorer.Client used here.
type CostExplorerAPI interface {
	GetCostForecast(ctx context.Context, params *costexplorer.GetCostForecastInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostForecastOutput, error)
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// CostExplorer implements Client on the AWS Cost Explorer API.
type CostExplorer struct {
	api    CostExplorerAPI
	logger *zap.Logger
}

// New wraps an existing Cost Explorer API client.
func New(logger *zap.Logger, api CostExplorerAPI) *CostExplorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostExplorer{api: api, logger: logger}
}

// NewCostExplorer loads the shared AWS configuration for profile and returns
// a client bound to region. An empty region keeps the profile's own region.
func NewCostExplorer(ctx context.Context, logger *zap.Logger, profile, region string) (*CostExplorer, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration for profile %q: %w", profile, err)
	}

	return New(logger, costexplorer.NewFromConfig(cfg)), nil
}

// excludeCreditsAndRefunds filters out RECORD_TYPE Credit and Refund.
func excludeCreditsAndRefunds() *types.Expression {
	return &types.Expression{
		Not: &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionRecordType,
				Values: []string{constants.RecordTypeCredit, constants.RecordTypeRefund},
			},
		},
	}
}

// ForecastCost calls GetCostForecast with monthly granularity and the blended
// cost metric.
func (c *CostExplorer) ForecastCost(ctx context.Context, period Period) (float64, error) {
	c.logger.Debug("requesting cost forecast",
		zap.String("op", "billing.ForecastCost"),
		zap.Stringer("period", period),
	)

	out, err := c.api.GetCostForecast(ctx, &costexplorer.GetCostForecastInput{
		TimePeriod:  period.dateInterval(),
		Metric:      types.MetricBlendedCost,
		Granularity: types.GranularityMonthly,
		Filter:      excludeCreditsAndRefunds(),
	})
	if err != nil {
		return 0, fmt.Errorf("get cost forecast (%s): %w", period, err)
	}
	if out == nil || out.Total == nil {
		return 0, fmt.Errorf("get cost forecast (%s): %w", period, ErrNoData)
	}

	return parseAmount(out.Total.Amount)
}

// ActualCost calls GetCostAndUsage with monthly granularity and returns the
// blended cost total of the first result bucket.
func (c *CostExplorer) ActualCost(ctx context.Context, period Period) (float64, error) {
	c.logger.Debug("requesting cost and usage",
		zap.String("op", "billing.ActualCost"),
		zap.Stringer("period", period),
	)

	out, err := c.api.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod:  period.dateInterval(),
		Granularity: types.GranularityMonthly,
		Filter:      excludeCreditsAndRefunds(),
		Metrics:     []string{constants.BlendedCostMetric},
	})
	if err != nil {
		return 0, fmt.Errorf("get cost and usage (%s): %w", period, err)
	}
	if out == nil || len(out.ResultsByTime) == 0 {
		return 0, fmt.Errorf("get cost and usage (%s): %w", period, ErrNoData)
	}

	total, ok := out.ResultsByTime[0].Total[constants.BlendedCostMetric]
	if !ok {
		return 0, fmt.Errorf("get cost and usage (%s): %s missing: %w", period, constants.BlendedCostMetric, ErrNoData)
	}

	return parseAmount(total.Amount)
}

func parseAmount(amount *string) (float64, error) {
	if amount == nil {
		return 0, ErrNoData
	}
	value, err := strconv.ParseFloat(*amount, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", *amount, err)
	}
	return value, nil
}
