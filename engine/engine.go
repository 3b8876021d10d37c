package engine

import (
	"context"

	"github.com/crmarques/jenkview/view"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionAddJob Action = "add-job"
)

// Operation is one mutating CLI call the engine decided on. Executed is false
// when the pass ran in dry-run mode and the call was only planned.
type Operation struct {
	Command  string
	View     string
	Job      string
	Executed bool
}

// Result audits one convergence pass: the pass id, the requested action, and
// every mutating operation that was planned or issued.
type Result struct {
	Pass       string
	Action     Action
	View       string
	Operations []Operation
}

func (r Result) Changed() bool {
	return len(r.Operations) > 0
}

type Engine interface {
	Converge(ctx context.Context, action Action, desired view.DesiredView) (Result, error)
}
