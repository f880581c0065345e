// Package output writes forecast results for the caller.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/cost-forecast/internal/forecast"
)

// PrettyFormat writes the single human-readable forecast line.
func PrettyFormat(w io.Writer, report forecast.Report) error {
	_, err := fmt.Fprintln(w, report.String())
	return err
}

// InvalidRunType writes the message shown for an unknown --type value.
func InvalidRunType(w io.Writer, runType string, valid ...string) error {
	_, err := fmt.Fprintf(w, "Invalid run type: %s . Please choose from: %s\n", runType, strings.Join(valid, ", "))
	return err
}
