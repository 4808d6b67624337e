package workload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway"
	"github.com/de-tools/wafr-cli/pkg/services/lens"
	"github.com/de-tools/wafr-cli/pkg/services/prompt"
	"github.com/de-tools/wafr-cli/pkg/services/template"
	"github.com/de-tools/wafr-cli/pkg/store/templatefile"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var ErrWorkloadNotFound = errors.New("workload not found")

const requestTokenLayout = "2006-01-02 15:04:05.000000"

// Locator resolves a workload name to its id.
type Locator interface {
	IDByName(ctx context.Context, name string) (string, error)
}

type Options struct {
	StandardTemplate  string
	StandardLensAlias string
	ListPageSize      int32
}

type Service struct {
	gateway    gateway.Gateway
	lenses     lens.Lookup
	files      templatefile.Store
	reconciler *Reconciler
	confirm    prompt.Confirm
	opts       Options
	now        func() time.Time
}

var _ Locator = (*Service)(nil)

func NewService(
	gw gateway.Gateway,
	lenses lens.Lookup,
	files templatefile.Store,
	confirm prompt.Confirm,
	opts Options,
) *Service {
	return &Service{
		gateway:    gw,
		lenses:     lenses,
		files:      files,
		reconciler: NewReconciler(gw),
		confirm:    confirm,
		opts:       opts,
		now:        time.Now,
	}
}

type CreateRequest struct {
	TemplatePath    string
	Name            string
	Description     string
	Environment     domain.Environment
	AccountIDs      []string
	Regions         []string
	ReviewOwner     string
	DisableStandard bool
	TrustedAdvisor  domain.TrustedAdvisorStatus
}

type UpdateRequest struct {
	TemplatePath    string
	Name            string
	DisableStandard bool
}

// List returns the first page of workloads in the order the service reports them.
func (s *Service) List(ctx context.Context) ([]domain.WorkloadSummary, error) {
	return s.gateway.ListWorkloads(ctx, s.opts.ListPageSize)
}

func (s *Service) IDByName(ctx context.Context, name string) (string, error) {
	workloads, err := s.gateway.ListWorkloads(ctx, 0)
	if err != nil {
		return "", err
	}

	found, ok := lo.Find(workloads, func(w domain.WorkloadSummary) bool {
		return w.Name == name
	})
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrWorkloadNotFound, name)
	}
	return found.ID, nil
}

// Create creates a workload on the template's lens and applies the template's
// marks. It fails with lens.ErrLensNotFound before creating anything when the
// lens is not published.
func (s *Service) Create(ctx context.Context, req CreateRequest) (string, error) {
	tmpl, err := s.loadTemplate(ctx, req.TemplatePath)
	if err != nil {
		return "", err
	}

	lensAlias, err := s.lenses.AliasByName(ctx, tmpl.Lens)
	if err != nil {
		return "", err
	}

	workloadID, err := s.gateway.CreateWorkload(ctx, domain.NewWorkload{
		Name:               req.Name,
		Description:        req.Description,
		Environment:        req.Environment,
		AccountIDs:         req.AccountIDs,
		Regions:            req.Regions,
		ReviewOwner:        req.ReviewOwner,
		PillarPriorities:   domain.PillarIDs(),
		Lenses:             []string{lensAlias},
		ClientRequestToken: s.now().Format(requestTokenLayout),
		TrustedAdvisor:     req.TrustedAdvisor,
	})
	if err != nil {
		return "", err
	}
	zerolog.Ctx(ctx).Info().Str("workload_id", workloadID).Str("workload_name", req.Name).Msg("workload created")

	if s.disablingStandard(req.DisableStandard, lensAlias) {
		if err := s.disableStandard(ctx, workloadID); err != nil {
			return workloadID, err
		}
	}

	if _, err := s.reconciler.Apply(ctx, workloadID, tmpl, lensAlias); err != nil {
		return workloadID, err
	}
	return workloadID, nil
}

// Update applies the template's marks to an existing workload. When the
// template's lens is not associated yet the operator is asked whether to add
// it; the marks are applied against that lens either way.
func (s *Service) Update(ctx context.Context, req UpdateRequest) error {
	logger := zerolog.Ctx(ctx)

	tmpl, err := s.loadTemplate(ctx, req.TemplatePath)
	if err != nil {
		return err
	}

	lensAlias, err := s.lenses.AliasByName(ctx, tmpl.Lens)
	if err != nil {
		return err
	}

	workloadID, err := s.IDByName(ctx, req.Name)
	if err != nil {
		return err
	}

	associated, err := s.lensAssociated(ctx, workloadID, lensAlias)
	if err != nil {
		return err
	}
	if !associated {
		add, err := s.confirm(ctx, "The lens template type is different than the one in the workload. Do you want to add this lens to the workload?")
		if err != nil {
			return err
		}
		if add {
			if err := s.gateway.AssociateLenses(ctx, workloadID, []string{lensAlias}); err != nil {
				return err
			}
			logger.Info().Str("workload_id", workloadID).Str("lens", lensAlias).Msg("lens associated")
		} else {
			// TODO: decide with product whether declining should skip the apply; the service rejects unassociated lenses.
			logger.Warn().Str("workload_id", workloadID).Str("lens", lensAlias).Msg("applying marks to a lens not associated with the workload")
		}
	}

	if _, err := s.reconciler.Apply(ctx, workloadID, tmpl, lensAlias); err != nil {
		return err
	}

	if s.disablingStandard(req.DisableStandard, lensAlias) {
		return s.disableStandard(ctx, workloadID)
	}
	return nil
}

func (s *Service) lensAssociated(ctx context.Context, workloadID, lensAlias string) (bool, error) {
	w, err := s.gateway.GetWorkload(ctx, workloadID)
	if err != nil {
		return false, err
	}
	return lo.Contains(w.Lenses, lensAlias), nil
}

func (s *Service) disablingStandard(disable bool, lensAlias string) bool {
	return disable && lensAlias != s.opts.StandardLensAlias
}

func (s *Service) disableStandard(ctx context.Context, workloadID string) error {
	standard, err := s.loadTemplate(ctx, s.opts.StandardTemplate)
	if err != nil {
		return fmt.Errorf("failed to load standard template: %w", err)
	}
	_, err = s.reconciler.DisableQuestions(ctx, workloadID, standard, s.opts.StandardLensAlias)
	return err
}

func (s *Service) loadTemplate(ctx context.Context, path string) (*domain.Template, error) {
	data, err := s.files.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tmpl, nil
}
