// Package mathutil provides common mathematical utility functions.
package mathutil

import "github.com/iwvelando/cost-forecast/pkg/constants"

// InvertedChange returns (1 - prior/current) * 100, the share of current
// that is new relative to prior. It is positive when current exceeds prior.
// A zero current yields 0.
func InvertedChange(prior, current float64) float64 {
	if current == 0 {
		return 0
	}
	return (1 - prior/current) * constants.PercentageMultiplier
}
