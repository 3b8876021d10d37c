package core

import (
	"context"

	"github.com/crmarques/jenkview/config"
	configfile "github.com/crmarques/jenkview/internal/providers/config/file"
	"github.com/crmarques/jenkview/internal/providers/server/jenkinscli"
)

func NewContextService(opts BootstrapConfig) config.ContextService {
	return configfile.NewFileContextService(opts.ContextCatalogPath)
}

func NewJenkviewContext(opts BootstrapConfig, selection config.ContextSelection) (JenkviewContext, error) {
	contextService := NewContextService(opts)

	resolved, err := contextService.ResolveContext(context.Background(), selection)
	if err != nil {
		return JenkviewContext{}, err
	}

	manager, err := jenkinscli.NewCLIViewServerManager(resolved.Server)
	if err != nil {
		return JenkviewContext{}, err
	}

	return JenkviewContext{
		Contexts: contextService,
		Server:   manager,
		Resolved: resolved,
	}, nil
}
