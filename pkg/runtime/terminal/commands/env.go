package commands

import (
	"context"

	"github.com/de-tools/wafr-cli/pkg/services/config"
	"github.com/de-tools/wafr-cli/pkg/services/gateway"
	"github.com/de-tools/wafr-cli/pkg/services/lens"
	"github.com/de-tools/wafr-cli/pkg/services/prompt"
	"github.com/de-tools/wafr-cli/pkg/services/workload"
	"github.com/de-tools/wafr-cli/pkg/store/templatefile"
)

// Env carries the collaborators a command needs once AWS access is set up.
type Env struct {
	Settings *config.Settings
	Gateway  gateway.Gateway
	Files    templatefile.Store
	Confirm  prompt.Confirm
}

// EnvFactory builds the Env lazily so commands that fail flag validation never
// touch AWS credentials.
type EnvFactory func(ctx context.Context) (*Env, error)

func (e *Env) lensService() *lens.Service {
	return lens.NewService(e.Gateway, e.Files)
}

func (e *Env) workloadService() *workload.Service {
	return workload.NewService(e.Gateway, e.lensService(), e.Files, e.Confirm, workload.Options{
		StandardTemplate:  e.Settings.StandardTemplate,
		StandardLensAlias: e.Settings.StandardLensAlias,
		ListPageSize:      e.Settings.ListPageSize,
	})
}
