package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/iwvelando/cost-forecast/internal/billing"
	"github.com/iwvelando/cost-forecast/internal/config"
	"github.com/iwvelando/cost-forecast/internal/forecast"
	"github.com/iwvelando/cost-forecast/internal/logging"
	"github.com/iwvelando/cost-forecast/pkg/constants"
	"github.com/iwvelando/cost-forecast/pkg/output"
	"github.com/iwvelando/cost-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

// clientFactory builds the billing client for a profile and region.
type clientFactory func(ctx context.Context, logger *zap.Logger, profile, region string) (billing.Client, error)

func costExplorerFactory(ctx context.Context, logger *zap.Logger, profile, region string) (billing.Client, error) {
	client, err := billing.NewCostExplorer(ctx, logger, profile, region)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// loggedError marks an error that has already been written to the logger.
type loggedError struct {
	err error
}

func (e loggedError) Error() string { return e.err.Error() }

func (e loggedError) Unwrap() error { return e.err }

type app struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
	now       func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "cost-forecast --profile <account> --type [FORECAST|ACTUALS]",
		Short:         "Print the AWS month-end cost forecast and its change from last month",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			conf, err := config.LoadConfiguration(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger, closeLog, err := logging.New(conf.Logging, a.stderr)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer closeLog()

			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
				}
				if err != nil {
					logger.Error("Error",
						zap.String("op", "main"),
						zap.Error(err),
						zap.Stack("stacktrace"),
					)
					err = loggedError{err: err}
				}
			}()

			return a.run(cmd.Context(), logger, conf)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to an optional YAML configuration file")
	flags.String("profile", "", "AWS shared config profile selecting the account")
	flags.String("type", "", "run type: FORECAST or ACTUALS")
	flags.Bool("d", false, "dry run (accepted, no effect)")
	flags.Int("minutes", constants.DefaultMinutes, "minutes (accepted, no effect)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("region", constants.DefaultRegion, "AWS region for the Cost Explorer endpoint")
	flags.String("log-file", constants.DefaultLogFile, "file mirroring every log line, empty to disable")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("type")

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd
}

func (a *app) run(ctx context.Context, logger *zap.Logger, conf *config.Configuration) error {
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if err := validation.ValidateRunType(conf.Type); err != nil {
		if errors.Is(err, validation.ErrInvalidRunType) {
			_ = output.InvalidRunType(a.stdout, conf.Type, constants.RunTypeForecast, constants.RunTypeActuals)
		}
		return err
	}

	client, err := a.newClient(ctx, logger, conf.Profile, conf.Region)
	if err != nil {
		return err
	}

	var opts []forecast.Option
	if a.now != nil {
		opts = append(opts, forecast.WithClock(a.now))
	}
	report := forecast.NewCalculator(logger, client, opts...).Calculate(ctx)

	logger.Info(report.String(),
		zap.String("op", "main"),
		zap.String("profile", conf.Profile),
	)
	return output.PrettyFormat(a.stdout, report)
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var logged loggedError
		if !errors.As(err, &logged) {
			_, _ = fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(context.Background(), &app{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newClient: costExplorerFactory,
	}, os.Args[1:]))
}
