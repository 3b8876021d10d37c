package jenkinscli

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/crmarques/jenkview/config"
)

// CommandRunner invokes one remote CLI sub-command with optional piped stdin
// and returns the captured stdout. Failures carry the captured stderr so
// callers can classify human-readable server messages.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, args ...string) ([]byte, error)
}

// CommandError is a failed CLI invocation. Stderr holds whatever the remote
// CLI printed before exiting non-zero.
type CommandError struct {
	Args   []string
	Stderr string
	Cause  error
}

func (e *CommandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "cli command " + strings.Join(e.Args, " ") + " failed"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += " (" + detail + ")"
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

const defaultJavaBin = "java"

// ExecCommandRunner shells out to the Jenkins CLI jar. Every invocation is a
// fresh process; deadlines and cancellation come from the caller's context.
type ExecCommandRunner struct {
	javaBin  string
	baseArgs []string
}

func NewExecCommandRunner(server config.Server) (*ExecCommandRunner, error) {
	if strings.TrimSpace(server.URL) == "" {
		return nil, validationError("server url is required", nil)
	}
	if strings.TrimSpace(server.CLIJar) == "" {
		return nil, validationError("server cli-jar path is required", nil)
	}

	javaBin := strings.TrimSpace(server.JavaBin)
	if javaBin == "" {
		javaBin = defaultJavaBin
	}

	baseArgs := []string{"-jar", server.CLIJar, "-s", server.URL}

	if auth := server.Auth; auth != nil {
		switch {
		case auth.SSHKeyFile != "":
			baseArgs = append(baseArgs, "-i", auth.SSHKeyFile)
		case auth.User != "":
			token, err := resolveAPIToken(auth)
			if err != nil {
				return nil, err
			}
			baseArgs = append(baseArgs, "-auth", auth.User+":"+token)
		}
	}

	return &ExecCommandRunner{javaBin: javaBin, baseArgs: baseArgs}, nil
}

func resolveAPIToken(auth *config.Auth) (string, error) {
	if strings.TrimSpace(auth.APITokenEnv) == "" {
		return "", validationError("server auth declares a user but no api-token-env", nil)
	}
	token := os.Getenv(auth.APITokenEnv)
	if token == "" {
		return "", validationError("environment variable "+auth.APITokenEnv+" holds no api token", nil)
	}
	return token, nil
}

func (r *ExecCommandRunner) Run(ctx context.Context, stdin io.Reader, args ...string) ([]byte, error) {
	argv := make([]string, 0, len(r.baseArgs)+len(args))
	argv = append(argv, r.baseArgs...)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, r.javaBin, argv...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: stderr.String(),
			Cause:  err,
		}
	}

	return stdout.Bytes(), nil
}
