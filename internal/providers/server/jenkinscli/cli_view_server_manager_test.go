package jenkinscli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/crmarques/jenkview/faults"
)

type fakeCall struct {
	args  []string
	stdin string
}

type fakeRunner struct {
	calls  []fakeCall
	output []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, stdin io.Reader, args ...string) ([]byte, error) {
	captured := ""
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		captured = string(data)
	}
	f.calls = append(f.calls, fakeCall{args: args, stdin: captured})
	return f.output, f.err
}

func TestGetViewParsesPresentDescriptor(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte("<hudson.model.ListView>\n  <name>qa</name>\n</hudson.model.ListView>\n")}
	manager := NewCLIViewServerManagerWithRunner(runner)

	observed, err := manager.GetView(context.Background(), "qa")
	if err != nil {
		t.Fatalf("GetView returned error: %v", err)
	}
	if !observed.Exists {
		t.Fatalf("expected view to be observed as present")
	}
	if observed.Doc == nil || observed.Doc.Root() == nil {
		t.Fatalf("expected a parsed descriptor document")
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 cli call, got %d", len(runner.calls))
	}
	if got := strings.Join(runner.calls[0].args, " "); got != "get-view qa" {
		t.Fatalf("unexpected cli arguments %q", got)
	}
}

func TestGetViewClassifiesEmptyOutputAsAbsent(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{output: []byte("  \n")})

	observed, err := manager.GetView(context.Background(), "qa")
	if err != nil {
		t.Fatalf("GetView returned error: %v", err)
	}
	if observed.Exists {
		t.Fatalf("expected empty output to classify as absent")
	}
}

func TestGetViewClassifiesMarkerOutputAsAbsent(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{
		output: []byte("No viwe named qa inside view Jenkins"),
	})

	observed, err := manager.GetView(context.Background(), "qa")
	if err != nil {
		t.Fatalf("GetView returned error: %v", err)
	}
	if observed.Exists {
		t.Fatalf("expected marker output to classify as absent")
	}
}

func TestGetViewClassifiesStderrMarkerAsAbsent(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{
		err: &CommandError{
			Args:   []string{"get-view", "qa"},
			Stderr: "ERROR: No view named qa inside view Jenkins",
			Cause:  errors.New("exit status 255"),
		},
	})

	observed, err := manager.GetView(context.Background(), "qa")
	if err != nil {
		t.Fatalf("GetView returned error: %v", err)
	}
	if observed.Exists {
		t.Fatalf("expected stderr marker to classify as absent")
	}
}

func TestGetViewPropagatesTransportFailure(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{
		err: &CommandError{
			Args:   []string{"get-view", "qa"},
			Stderr: "connection refused",
			Cause:  errors.New("exit status 1"),
		},
	})

	_, err := manager.GetView(context.Background(), "qa")
	if !faults.IsCategory(err, faults.TransportError) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestGetViewPropagatesFailureWithEmptyStderr(t *testing.T) {
	t.Parallel()

	// A killed or never-spawned process writes nothing to stderr; that
	// must surface as a transport failure, not as an absent view.
	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{
		err: &CommandError{
			Args:  []string{"get-view", "qa"},
			Cause: errors.New("signal: killed"),
		},
	})

	observed, err := manager.GetView(context.Background(), "qa")
	if !faults.IsCategory(err, faults.TransportError) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if observed.Exists {
		t.Fatalf("expected no observed state on transport failure")
	}
}

func TestGetViewRejectsUnparseablePresentResponse(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{
		output: []byte("garbage that is neither empty nor a marker"),
	})

	_, err := manager.GetView(context.Background(), "qa")
	if !faults.IsCategory(err, faults.MalformedStateError) {
		t.Fatalf("expected malformed-state error, got %v", err)
	}
}

func TestCreateViewPipesDescriptor(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	manager := NewCLIViewServerManagerWithRunner(runner)

	if err := manager.CreateView(context.Background(), "qa", "<xml/>"); err != nil {
		t.Fatalf("CreateView returned error: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 cli call, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	if got := strings.Join(call.args, " "); got != "create-view qa" {
		t.Fatalf("unexpected cli arguments %q", got)
	}
	if call.stdin != "<xml/>" {
		t.Fatalf("expected descriptor on stdin, got %q", call.stdin)
	}
}

func TestAddJobToViewArgumentOrder(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	manager := NewCLIViewServerManagerWithRunner(runner)

	if err := manager.AddJobToView(context.Background(), "qa", "build-42"); err != nil {
		t.Fatalf("AddJobToView returned error: %v", err)
	}

	if got := strings.Join(runner.calls[0].args, " "); got != "add-job-to-view qa build-42" {
		t.Fatalf("unexpected cli arguments %q", got)
	}
}

func TestVersionTrimsOutput(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{output: []byte("2.414.3\n")})

	version, err := manager.Version(context.Background())
	if err != nil {
		t.Fatalf("Version returned error: %v", err)
	}
	if version != "2.414.3" {
		t.Fatalf("unexpected version %q", version)
	}
}

func TestVersionRejectsEmptyOutput(t *testing.T) {
	t.Parallel()

	manager := NewCLIViewServerManagerWithRunner(&fakeRunner{output: []byte("\n")})

	_, err := manager.Version(context.Background())
	if !faults.IsCategory(err, faults.MalformedStateError) {
		t.Fatalf("expected malformed-state error, got %v", err)
	}
}
