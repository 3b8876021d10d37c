package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crmarques/jenkview/config"
	"github.com/crmarques/jenkview/core"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: groupUserFacing,
		Short:   "Manage contexts for reaching Jenkins servers",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigUseCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetupCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured contexts",
		RunE: func(cmd *cobra.Command, args []string) error {
			contexts := core.NewContextService(core.BootstrapConfig{})

			list, err := contexts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				infof(cmd, "no contexts configured (run \"jenkview config setup\")")
				return nil
			}

			currentName := ""
			if current, err := contexts.GetCurrent(cmd.Context()); err == nil {
				currentName = current.Name
			}

			for _, cfg := range list {
				marker := " "
				if cfg.Name == currentName {
					marker = "*"
				}
				infof(cmd, "%s %s\t%s", marker, cfg.Name, cfg.Server.URL)
			}
			return nil
		},
	}
}

func newConfigUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Switch the current context",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveSingleArg(cmd, args, "name")
			if err != nil {
				return err
			}

			contexts := core.NewContextService(core.BootstrapConfig{})
			if err := contexts.SetCurrent(cmd.Context(), name); err != nil {
				return err
			}

			successf(cmd, "switched to context %s", name)
			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print one context as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			selection := config.ContextSelection{Name: contextName}
			if len(args) == 1 {
				selection.Name = strings.TrimSpace(args[0])
			} else if len(args) > 1 {
				return usageError(cmd, "expected at most one <name>")
			}

			contexts := core.NewContextService(core.BootstrapConfig{})
			resolved, err := contexts.ResolveContext(cmd.Context(), selection)
			if err != nil {
				return err
			}

			encoded, err := yaml.Marshal(resolved)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
}

func newConfigSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively add a context to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := promptContextConfig(cmd)
			if err != nil {
				return err
			}

			contexts := core.NewContextService(core.BootstrapConfig{})
			if err := contexts.Create(cmd.Context(), cfg); err != nil {
				return err
			}

			successf(cmd, "created context %s", cfg.Name)
			return nil
		},
	}
}

func promptContextConfig(cmd *cobra.Command) (config.Context, error) {
	prompt := newSetupPrompter(cmd)

	name, err := prompt.required("Context name")
	if err != nil {
		return config.Context{}, err
	}
	url, err := prompt.required("Jenkins server URL")
	if err != nil {
		return config.Context{}, err
	}
	cliJar, err := prompt.required("Path to jenkins-cli.jar")
	if err != nil {
		return config.Context{}, err
	}
	javaBin, err := prompt.optional("Java binary (empty for \"java\")")
	if err != nil {
		return config.Context{}, err
	}

	cfg := config.Context{
		Name: name,
		Server: config.Server{
			URL:     url,
			CLIJar:  cliJar,
			JavaBin: javaBin,
		},
	}

	user, err := prompt.optional("CLI user (empty for anonymous)")
	if err != nil {
		return config.Context{}, err
	}
	if user != "" {
		tokenEnv, err := prompt.required("Environment variable holding the API token")
		if err != nil {
			return config.Context{}, err
		}
		cfg.Server.Auth = &config.Auth{User: user, APITokenEnv: tokenEnv}
	}

	return cfg, nil
}

// setupPrompter asks with huh forms on a terminal and falls back to plain
// line reads when stdin is piped. One buffered reader lives for the whole
// setup flow so piped answers are not lost between questions.
type setupPrompter struct {
	interactive bool
	reader      *bufio.Reader
	errOut      io.Writer
}

func newSetupPrompter(cmd *cobra.Command) *setupPrompter {
	if isTerminalInput(cmd.InOrStdin()) {
		return &setupPrompter{interactive: true, errOut: cmd.ErrOrStderr()}
	}
	return &setupPrompter{
		reader: bufio.NewReader(cmd.InOrStdin()),
		errOut: cmd.ErrOrStderr(),
	}
}

func (p *setupPrompter) required(title string) (string, error) {
	for {
		value, err := p.readLine(title)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errors.New("input required")
			}
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.errOut, "input required")
	}
}

func (p *setupPrompter) optional(title string) (string, error) {
	value, err := p.readLine(title)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (p *setupPrompter) readLine(title string) (string, error) {
	if p.interactive {
		var value string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(title).
				Prompt("> ").
				Value(&value),
		)).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return "", err
		}
		return strings.TrimSpace(value), nil
	}

	fmt.Fprint(p.errOut, title+": ")
	line, err := p.reader.ReadString('\n')
	value := strings.TrimSpace(line)
	if errors.Is(err, io.EOF) && value == "" {
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return value, nil
}
