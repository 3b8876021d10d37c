package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestConfirmActionSkipsWhenYes(t *testing.T) {
	cmd := &cobra.Command{}
	if err := confirmAction(cmd, true, "Delete view?"); err != nil {
		t.Fatalf("expected --yes to skip the prompt, got %v", err)
	}
}

func TestConfirmActionAcceptsPipedYes(t *testing.T) {
	var errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("y\n"))
	cmd.SetErr(&errBuf)

	if err := confirmAction(cmd, false, "Delete view \"qa\"?"); err != nil {
		t.Fatalf("expected piped confirmation to succeed, got %v", err)
	}
	if !strings.Contains(errBuf.String(), "[y/N]") {
		t.Fatalf("expected plain prompt on stderr, got %q", errBuf.String())
	}
}

func TestConfirmActionRejectsByDefault(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetErr(new(bytes.Buffer))

	err := confirmAction(cmd, false, "Delete view \"qa\"?")
	if err == nil || !IsHandledError(err) {
		t.Fatalf("expected cancellation to surface as a handled error, got %v", err)
	}
}
