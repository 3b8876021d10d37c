package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crmarques/jenkview/events"
	"github.com/crmarques/jenkview/faults"
	"github.com/crmarques/jenkview/view"
	"github.com/crmarques/jenkview/viewserver"
)

var _ Engine = (*DefaultEngine)(nil)

// DefaultEngine converges one view per pass. It loads remote state at most
// once per pass and only issues the mutating calls the comparison demands.
// In dry-run mode every mutating branch is reported but not executed.
type DefaultEngine struct {
	Server viewserver.ViewServerManager
	Events events.Sink
	DryRun bool
}

func NewDefaultEngine(server viewserver.ViewServerManager, sink events.Sink, dryRun bool) *DefaultEngine {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &DefaultEngine{Server: server, Events: sink, DryRun: dryRun}
}

func (e *DefaultEngine) Converge(ctx context.Context, action Action, desired view.DesiredView) (Result, error) {
	if e == nil || e.Server == nil {
		return Result{}, faults.NewTypedError(faults.InternalError, "view server manager is not configured", nil)
	}
	if err := desired.Validate(); err != nil {
		return Result{}, err
	}

	pass := &convergencePass{
		engine:  e,
		desired: desired,
		result: Result{
			Pass:   uuid.NewString(),
			Action: action,
			View:   desired.Name,
		},
	}

	var err error
	switch action {
	case ActionCreate:
		err = pass.runCreate(ctx)
	case ActionUpdate:
		err = pass.runUpdate(ctx)
	case ActionDelete:
		err = pass.runDelete(ctx)
	case ActionAddJob:
		err = pass.runAddJob(ctx)
	default:
		err = faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("unsupported convergence action %q", action),
			nil,
		)
	}

	return pass.result, err
}

// convergencePass owns the state for one pass. Observed state is memoized on
// the pass itself and discarded with it, never shared across passes.
type convergencePass struct {
	engine   *DefaultEngine
	desired  view.DesiredView
	result   Result
	loaded   bool
	observed view.Observed
}

func (p *convergencePass) loadState(ctx context.Context) (view.Observed, error) {
	if p.loaded {
		return p.observed, nil
	}

	observed, err := p.engine.Server.GetView(ctx, p.desired.Name)
	if err != nil {
		return view.Observed{}, err
	}

	p.observed = observed
	p.loaded = true
	return observed, nil
}

func (p *convergencePass) runCreate(ctx context.Context) error {
	observed, err := p.loadState(ctx)
	if err != nil {
		return err
	}

	desiredXML, err := view.DesiredXML(p.desired.Name)
	if err != nil {
		return err
	}

	if observed.Exists {
		p.skip("view already exists")
	} else {
		err := p.mutate(ctx, Operation{Command: "create-view", View: p.desired.Name},
			fmt.Sprintf("create view %q", p.desired.Name),
			func(ctx context.Context) error {
				return p.engine.Server.CreateView(ctx, p.desired.Name, desiredXML)
			})
		if err != nil {
			return err
		}
	}

	// Creation and configuration correction are independent checks: a view
	// created out-of-band with a divergent descriptor still gets corrected.
	// An absent view is never in sync, so a fresh create is followed by an
	// update against the cached (absent) state.
	inSync, err := p.configMatches(observed, desiredXML)
	if err != nil {
		return err
	}
	if inSync {
		p.skip("configuration already up to date")
		return nil
	}

	return p.mutate(ctx, Operation{Command: "update-view", View: p.desired.Name},
		fmt.Sprintf("update configuration of view %q", p.desired.Name),
		func(ctx context.Context) error {
			return p.engine.Server.UpdateView(ctx, p.desired.Name, desiredXML)
		})
}

func (p *convergencePass) runUpdate(ctx context.Context) error {
	observed, err := p.loadState(ctx)
	if err != nil {
		return err
	}

	if !observed.Exists {
		return faults.NewTypedError(
			faults.PreconditionError,
			fmt.Sprintf("cannot update view %q: view does not exist", p.desired.Name),
			nil,
		)
	}

	desiredXML, err := view.DesiredXML(p.desired.Name)
	if err != nil {
		return err
	}

	inSync, err := p.configMatches(observed, desiredXML)
	if err != nil {
		return err
	}
	if inSync {
		p.skip("configuration already up to date")
		return nil
	}

	return p.mutate(ctx, Operation{Command: "update-view", View: p.desired.Name},
		fmt.Sprintf("update configuration of view %q", p.desired.Name),
		func(ctx context.Context) error {
			return p.engine.Server.UpdateView(ctx, p.desired.Name, desiredXML)
		})
}

func (p *convergencePass) runDelete(ctx context.Context) error {
	observed, err := p.loadState(ctx)
	if err != nil {
		return err
	}

	if !observed.Exists {
		p.skip("view does not exist")
		return nil
	}

	return p.mutate(ctx, Operation{Command: "delete-view", View: p.desired.Name},
		fmt.Sprintf("delete view %q", p.desired.Name),
		func(ctx context.Context) error {
			return p.engine.Server.DeleteView(ctx, p.desired.Name)
		})
}

func (p *convergencePass) runAddJob(ctx context.Context) error {
	job := strings.TrimSpace(p.desired.Job)
	if job == "" {
		return faults.NewTypedError(faults.ValidationError, "job name is required for add-job", nil)
	}
	if err := view.ValidateArgument(job); err != nil {
		return err
	}

	// Membership is not diffed; adding an already-listed job is a server-side
	// no-op, so the call fires on every pass.
	return p.mutate(ctx, Operation{Command: "add-job-to-view", View: p.desired.Name, Job: job},
		fmt.Sprintf("add job %q to view %q", job, p.desired.Name),
		func(ctx context.Context) error {
			return p.engine.Server.AddJobToView(ctx, p.desired.Name, job)
		})
}

// configMatches reports whether the observed descriptor canonically equals
// the desired one. Absent state never matches.
func (p *convergencePass) configMatches(observed view.Observed, desiredXML string) (bool, error) {
	if !observed.Exists {
		return false, nil
	}

	observedCanonical, err := view.Canonical(observed.Doc)
	if err != nil {
		return false, err
	}
	return observedCanonical == desiredXML, nil
}

func (p *convergencePass) mutate(
	ctx context.Context,
	operation Operation,
	detail string,
	run func(context.Context) error,
) error {
	p.record(events.WouldChange, detail)

	if p.engine.DryRun {
		p.result.Operations = append(p.result.Operations, operation)
		return nil
	}

	if err := run(ctx); err != nil {
		return err
	}

	operation.Executed = true
	p.result.Operations = append(p.result.Operations, operation)
	p.record(events.DidChange, detail)
	return nil
}

func (p *convergencePass) skip(detail string) {
	p.record(events.Skip, detail)
}

func (p *convergencePass) record(eventType events.EventType, detail string) {
	p.engine.Events.Record(events.Event{
		Pass:     p.result.Pass,
		Type:     eventType,
		Resource: p.desired.Name,
		Action:   string(p.result.Action),
		Detail:   detail,
	})
}
