package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/jenkview/config"
	"github.com/crmarques/jenkview/core"
	"github.com/crmarques/jenkview/engine"
	"github.com/crmarques/jenkview/events"
)

type handledError struct {
	msg string
}

func (handledError) handledMarker() {}

func (e handledError) Error() string {
	return e.msg
}

type handled interface {
	handledMarker()
}

func IsHandledError(err error) bool {
	if err == nil {
		return false
	}
	var h handled
	return errors.As(err, &h)
}

func loadJenkviewContext() (core.JenkviewContext, error) {
	return core.NewJenkviewContext(
		core.BootstrapConfig{},
		config.ContextSelection{Name: contextName},
	)
}

func loadEngine(cmd *cobra.Command, dryRun bool) (*engine.DefaultEngine, error) {
	jenkviewContext, err := loadJenkviewContext()
	if err != nil {
		return nil, err
	}
	return engine.NewDefaultEngine(jenkviewContext.Server, eventSink(cmd), dryRun), nil
}

func eventSink(cmd *cobra.Command) events.Sink {
	if noStatusOutput {
		return events.NopSink{}
	}
	return events.NewWriterSink(cmd.ErrOrStderr())
}

func usageError(cmd *cobra.Command, message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = "invalid command usage"
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

	return handledError{msg: msg}
}

func resolveSingleArg(cmd *cobra.Command, args []string, label string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", usageError(cmd, fmt.Sprintf("expected <%s>", label))
	}
	return strings.TrimSpace(args[0]), nil
}

func successf(cmd *cobra.Command, format string, args ...any) {
	if noStatusOutput {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[OK] "+format+"\n", args...)
}

func infof(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func reportResult(cmd *cobra.Command, result engine.Result, dryRun bool) {
	switch {
	case dryRun && result.Changed():
		successf(cmd, "planned %d change(s) for view %s", len(result.Operations), result.View)
	case dryRun:
		successf(cmd, "view %s needs no changes", result.View)
	case result.Changed():
		successf(cmd, "converged view %s (%d change(s))", result.View, len(result.Operations))
	default:
		successf(cmd, "view %s already converged", result.View)
	}
}
