package view

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/crmarques/jenkview/faults"
)

// DesiredView is the declared configuration for one Jenkins view. Job is only
// meaningful for the add-job action and participates in no comparison.
type DesiredView struct {
	Name string
	Job  string
}

// Observed is the remote state captured for one view at the start of a
// convergence pass. It is populated at most once per pass and never mutated
// afterwards.
type Observed struct {
	Exists bool
	Raw    string
	Doc    *etree.Document
}

func (v DesiredView) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return faults.NewTypedError(faults.ValidationError, "view name is required", nil)
	}
	return ValidateArgument(v.Name)
}

// ValidateArgument rejects values that the remote CLI would misparse when
// passed as a positional argument. Arguments go straight into argv, so there
// is no shell to quote for; rejecting flag-alike and control-character values
// is the remaining injection surface.
func ValidateArgument(value string) error {
	if strings.HasPrefix(value, "-") {
		return faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("argument %q must not start with a dash", value),
			nil,
		)
	}
	if strings.ContainsAny(value, "\x00\n\r") {
		return faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("argument %q contains control characters", value),
			nil,
		)
	}
	return nil
}
