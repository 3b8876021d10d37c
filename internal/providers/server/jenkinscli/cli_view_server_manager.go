package jenkinscli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/crmarques/jenkview/config"
	"github.com/crmarques/jenkview/view"
	"github.com/crmarques/jenkview/viewserver"
)

var _ viewserver.ViewServerManager = (*CLIViewServerManager)(nil)

// CLIViewServerManager implements the view sub-commands over a CommandRunner.
type CLIViewServerManager struct {
	runner CommandRunner
}

func NewCLIViewServerManager(server config.Server) (*CLIViewServerManager, error) {
	runner, err := NewExecCommandRunner(server)
	if err != nil {
		return nil, err
	}
	return &CLIViewServerManager{runner: runner}, nil
}

func NewCLIViewServerManagerWithRunner(runner CommandRunner) *CLIViewServerManager {
	return &CLIViewServerManager{runner: runner}
}

func (m *CLIViewServerManager) GetView(ctx context.Context, name string) (view.Observed, error) {
	output, err := m.runner.Run(ctx, nil, "get-view", name)
	if err != nil {
		// The CLI reports a missing view as a failure with a message on
		// stderr; anything else is a real transport problem. A failure with
		// nothing on stderr (killed process, spawn error) is never absence.
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) &&
			strings.TrimSpace(cmdErr.Stderr) != "" &&
			viewserver.IsAbsentOutput(cmdErr.Stderr) {
			return view.Observed{}, nil
		}
		return view.Observed{}, transportError(fmt.Sprintf("failed to query view %q", name), err)
	}

	raw := string(output)
	if viewserver.IsAbsentOutput(raw) {
		return view.Observed{}, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil || doc.Root() == nil {
		// A present response that does not parse means the server or the
		// transport broke contract; treating it as absent could trigger a
		// destructive re-create.
		return view.Observed{}, malformedStateError(
			fmt.Sprintf("view %q returned an unparseable descriptor", name),
			err,
		)
	}

	return view.Observed{Exists: true, Raw: raw, Doc: doc}, nil
}

func (m *CLIViewServerManager) CreateView(ctx context.Context, name string, configXML string) error {
	if _, err := m.runner.Run(ctx, strings.NewReader(configXML), "create-view", name); err != nil {
		return transportError(fmt.Sprintf("failed to create view %q", name), err)
	}
	return nil
}

func (m *CLIViewServerManager) UpdateView(ctx context.Context, name string, configXML string) error {
	if _, err := m.runner.Run(ctx, strings.NewReader(configXML), "update-view", name); err != nil {
		return transportError(fmt.Sprintf("failed to update view %q", name), err)
	}
	return nil
}

func (m *CLIViewServerManager) DeleteView(ctx context.Context, name string) error {
	if _, err := m.runner.Run(ctx, nil, "delete-view", name); err != nil {
		return transportError(fmt.Sprintf("failed to delete view %q", name), err)
	}
	return nil
}

func (m *CLIViewServerManager) AddJobToView(ctx context.Context, name string, job string) error {
	if _, err := m.runner.Run(ctx, nil, "add-job-to-view", name, job); err != nil {
		return transportError(fmt.Sprintf("failed to add job %q to view %q", job, name), err)
	}
	return nil
}

func (m *CLIViewServerManager) Version(ctx context.Context) (string, error) {
	output, err := m.runner.Run(ctx, nil, "version")
	if err != nil {
		return "", transportError("failed to query server version", err)
	}

	version := strings.TrimSpace(string(output))
	if version == "" {
		return "", malformedStateError("server returned an empty version", nil)
	}
	return version, nil
}
