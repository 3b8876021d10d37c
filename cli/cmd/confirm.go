package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func confirmAction(cmd *cobra.Command, skipPrompt bool, message string) error {
	if skipPrompt {
		return nil
	}

	confirmed, err := confirmPrompt(cmd, message)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return handledError{msg: "operation cancelled"}
	}
	return nil
}

func confirmPrompt(cmd *cobra.Command, message string) (bool, error) {
	if isTerminalInput(cmd.InOrStdin()) {
		value := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Value(&value),
		)).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return false, err
		}
		return value, nil
	}

	// Piped stdin still gets a plain y/N prompt so scripted confirmations work.
	fmt.Fprint(cmd.ErrOrStderr(), message+" [y/N]: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func isTerminalInput(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
