package file

import (
	"fmt"
	"strings"

	"github.com/crmarques/jenkview/config"
	"github.com/crmarques/jenkview/faults"
)

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func notFoundError(message string) error {
	return faults.NewTypedError(faults.NotFoundError, message, nil)
}

func internalError(message string, cause error) error {
	return faults.NewTypedError(faults.InternalError, message, cause)
}

func normalizeConfig(cfg config.Context) config.Context {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Server.URL = strings.TrimSpace(cfg.Server.URL)
	cfg.Server.CLIJar = strings.TrimSpace(cfg.Server.CLIJar)
	cfg.Server.JavaBin = strings.TrimSpace(cfg.Server.JavaBin)
	return cfg
}

func validateConfig(cfg config.Context) error {
	if cfg.Name == "" {
		return validationError("context name must not be empty", nil)
	}
	if cfg.Server.URL == "" {
		return validationError(fmt.Sprintf("context %q declares no server url", cfg.Name), nil)
	}
	if cfg.Server.CLIJar == "" {
		return validationError(fmt.Sprintf("context %q declares no cli-jar path", cfg.Name), nil)
	}
	if auth := cfg.Server.Auth; auth != nil {
		if auth.User != "" && auth.APITokenEnv == "" {
			return validationError(
				fmt.Sprintf("context %q declares a user but no api-token-env", cfg.Name),
				nil,
			)
		}
		if auth.User == "" && auth.SSHKeyFile == "" {
			return validationError(
				fmt.Sprintf("context %q declares an empty auth section", cfg.Name),
				nil,
			)
		}
	}
	return nil
}

func validateCatalog(catalog config.ContextCatalog) error {
	seen := make(map[string]struct{}, len(catalog.Contexts))
	for _, cfg := range catalog.Contexts {
		if err := validateConfig(cfg); err != nil {
			return err
		}
		if _, duplicate := seen[cfg.Name]; duplicate {
			return validationError(fmt.Sprintf("context %q is declared more than once", cfg.Name), nil)
		}
		seen[cfg.Name] = struct{}{}
	}

	if catalog.CurrentCtx != "" {
		if _, ok := seen[catalog.CurrentCtx]; !ok {
			return validationError(
				fmt.Sprintf("current-ctx %q does not name a declared context", catalog.CurrentCtx),
				nil,
			)
		}
	}
	return nil
}

func findContextIndex(contexts []config.Context, name string) int {
	for idx, cfg := range contexts {
		if cfg.Name == name {
			return idx
		}
	}
	return -1
}
