package core

import (
	"github.com/crmarques/jenkview/config"
	"github.com/crmarques/jenkview/viewserver"
)

type JenkviewContext struct {
	Contexts config.ContextService
	Server   viewserver.ViewServerManager
	Resolved config.Context
}

type BootstrapConfig struct {
	ContextCatalogPath string
}
