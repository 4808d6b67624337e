// Package gateway declares the operations the tool consumes from the remote
// review service. Implementations live under pkg/store.
package gateway

import (
	"context"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
)

// Gateway is the remote review service as seen by the template codec, the
// reconciler and lens resolution. A maxResults of zero leaves the page size
// to the service.
type Gateway interface {
	ListWorkloads(ctx context.Context, maxResults int32) ([]domain.WorkloadSummary, error)
	GetWorkload(ctx context.Context, workloadID string) (*domain.Workload, error)
	CreateWorkload(ctx context.Context, req domain.NewWorkload) (string, error)
	AssociateLenses(ctx context.Context, workloadID string, lensAliases []string) error

	ListAnswers(ctx context.Context, workloadID, lensAlias, pillarID string, maxResults int32) ([]domain.AnswerSummary, error)
	GetAnswer(ctx context.Context, workloadID, lensAlias, questionID string) (*domain.Answer, error)
	UpdateAnswer(ctx context.Context, update domain.AnswerUpdate) error

	ListLenses(ctx context.Context) ([]domain.LensSummary, error)
	ImportLens(ctx context.Context, req domain.LensImport) (string, error)
	CreateLensVersion(ctx context.Context, lensAlias, version string) error
}
