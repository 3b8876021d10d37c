package viewserver

import (
	"context"

	"github.com/crmarques/jenkview/view"
)

// ViewServerManager is the only channel for observing and mutating views on
// the remote server. GetView is a read; everything else mutates and fails
// hard on any transport error.
type ViewServerManager interface {
	GetView(ctx context.Context, name string) (view.Observed, error)
	CreateView(ctx context.Context, name string, configXML string) error
	UpdateView(ctx context.Context, name string, configXML string) error
	DeleteView(ctx context.Context, name string) error
	AddJobToView(ctx context.Context, name string, job string) error
	Version(ctx context.Context) (string, error)
}

// MinSupportedServerVersion is the oldest server release the view
// sub-commands are known to behave on.
const MinSupportedServerVersion = "2.0.0"
