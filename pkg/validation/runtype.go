// Package validation provides common validation utilities.
package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/cost-forecast/pkg/constants"
)

var (
	// ErrInvalidRunType is returned for a --type outside FORECAST and ACTUALS.
	ErrInvalidRunType = errors.New("invalid run type")

	// ErrNotImplemented is returned for run types that are accepted but not built.
	ErrNotImplemented = errors.New("not implemented")
)

// ValidateRunType checks the --type value. ACTUALS is recognised but reported
// as ErrNotImplemented.
func ValidateRunType(runType string) error {
	switch runType {
	case constants.RunTypeForecast:
		return nil
	case constants.RunTypeActuals:
		return fmt.Errorf("%w - %s", ErrNotImplemented, constants.RunTypeActuals)
	default:
		return fmt.Errorf("%w: Invalid run type: %s . Please choose from: %s, %s",
			ErrInvalidRunType, runType, constants.RunTypeForecast, constants.RunTypeActuals)
	}
}

// SettingsWarnings lists settings that are accepted but have no effect on the
// forecast, plus a region other than Cost Explorer's home region.
func SettingsWarnings(region string, dryRun bool, minutes int) []string {
	var warnings []string

	if region != "" && region != constants.DefaultRegion {
		warnings = append(warnings, fmt.Sprintf("region %s is not %s; Cost Explorer is served from %s",
			region, constants.DefaultRegion, constants.DefaultRegion))
	}
	if dryRun {
		warnings = append(warnings, "--d has no effect on the forecast")
	}
	if minutes != constants.DefaultMinutes {
		warnings = append(warnings, fmt.Sprintf("--minutes=%d has no effect on the forecast", minutes))
	}

	return warnings
}
