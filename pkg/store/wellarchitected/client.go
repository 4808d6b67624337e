package wellarchitected

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	wa "github.com/aws/aws-sdk-go-v2/service/wellarchitected"
	"github.com/aws/aws-sdk-go-v2/service/wellarchitected/types"
	"github.com/de-tools/wafr-cli/pkg/adapters"
	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// API is the subset of the Well-Architected Tool client used by Client.
type API interface {
	ListWorkloads(ctx context.Context, params *wa.ListWorkloadsInput, optFns ...func(*wa.Options)) (*wa.ListWorkloadsOutput, error)
	GetWorkload(ctx context.Context, params *wa.GetWorkloadInput, optFns ...func(*wa.Options)) (*wa.GetWorkloadOutput, error)
	CreateWorkload(ctx context.Context, params *wa.CreateWorkloadInput, optFns ...func(*wa.Options)) (*wa.CreateWorkloadOutput, error)
	AssociateLenses(ctx context.Context, params *wa.AssociateLensesInput, optFns ...func(*wa.Options)) (*wa.AssociateLensesOutput, error)
	ListAnswers(ctx context.Context, params *wa.ListAnswersInput, optFns ...func(*wa.Options)) (*wa.ListAnswersOutput, error)
	GetAnswer(ctx context.Context, params *wa.GetAnswerInput, optFns ...func(*wa.Options)) (*wa.GetAnswerOutput, error)
	UpdateAnswer(ctx context.Context, params *wa.UpdateAnswerInput, optFns ...func(*wa.Options)) (*wa.UpdateAnswerOutput, error)
	ListLenses(ctx context.Context, params *wa.ListLensesInput, optFns ...func(*wa.Options)) (*wa.ListLensesOutput, error)
	ImportLens(ctx context.Context, params *wa.ImportLensInput, optFns ...func(*wa.Options)) (*wa.ImportLensOutput, error)
	CreateLensVersion(ctx context.Context, params *wa.CreateLensVersionInput, optFns ...func(*wa.Options)) (*wa.CreateLensVersionOutput, error)
}

type Client struct {
	api API
}

var _ gateway.Gateway = (*Client)(nil)

func NewFromConfig(cfg aws.Config) *Client {
	return NewClient(wa.NewFromConfig(cfg))
}

func NewClient(api API) *Client {
	return &Client{api: api}
}

func (c *Client) ListWorkloads(ctx context.Context, maxResults int32) ([]domain.WorkloadSummary, error) {
	out, err := c.api.ListWorkloads(ctx, &wa.ListWorkloadsInput{
		MaxResults: pageSize(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workloads: %w", err)
	}

	return lo.Map(out.WorkloadSummaries, func(ws types.WorkloadSummary, _ int) domain.WorkloadSummary {
		return adapters.MapWorkloadSummaryToDomain(ws)
	}), nil
}

func (c *Client) GetWorkload(ctx context.Context, workloadID string) (*domain.Workload, error) {
	out, err := c.api.GetWorkload(ctx, &wa.GetWorkloadInput{
		WorkloadId: aws.String(workloadID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get workload %s: %w", workloadID, err)
	}
	if out.Workload == nil {
		return nil, fmt.Errorf("workload %s returned no details", workloadID)
	}

	return adapters.MapWorkloadToDomain(out.Workload), nil
}

func (c *Client) CreateWorkload(ctx context.Context, req domain.NewWorkload) (string, error) {
	input := &wa.CreateWorkloadInput{
		WorkloadName:       aws.String(req.Name),
		Description:        aws.String(req.Description),
		Environment:        types.WorkloadEnvironment(req.Environment),
		AccountIds:         req.AccountIDs,
		AwsRegions:         req.Regions,
		ReviewOwner:        aws.String(req.ReviewOwner),
		PillarPriorities:   req.PillarPriorities,
		Lenses:             req.Lenses,
		ClientRequestToken: aws.String(req.ClientRequestToken),
	}
	if req.TrustedAdvisor != domain.TrustedAdvisorUnset {
		input.DiscoveryConfig = &types.WorkloadDiscoveryConfig{
			TrustedAdvisorIntegrationStatus: types.TrustedAdvisorIntegrationStatus(req.TrustedAdvisor),
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("workload_name", req.Name).
		Strs("lenses", req.Lenses).
		Msg("creating workload")

	out, err := c.api.CreateWorkload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to create workload %s: %w", req.Name, err)
	}

	return aws.ToString(out.WorkloadId), nil
}

func (c *Client) AssociateLenses(ctx context.Context, workloadID string, lensAliases []string) error {
	zerolog.Ctx(ctx).Debug().
		Str("workload_id", workloadID).
		Strs("lenses", lensAliases).
		Msg("associating lenses")

	_, err := c.api.AssociateLenses(ctx, &wa.AssociateLensesInput{
		WorkloadId:  aws.String(workloadID),
		LensAliases: lensAliases,
	})
	if err != nil {
		return fmt.Errorf("failed to associate lenses with workload %s: %w", workloadID, err)
	}
	return nil
}

// ListAnswers returns a single page of answers. Pillars with more answers
// than maxResults are truncated.
func (c *Client) ListAnswers(
	ctx context.Context,
	workloadID, lensAlias, pillarID string,
	maxResults int32,
) ([]domain.AnswerSummary, error) {
	out, err := c.api.ListAnswers(ctx, &wa.ListAnswersInput{
		WorkloadId: aws.String(workloadID),
		LensAlias:  aws.String(lensAlias),
		PillarId:   aws.String(pillarID),
		MaxResults: pageSize(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list answers for pillar %s: %w", pillarID, err)
	}

	return lo.Map(out.AnswerSummaries, func(as types.AnswerSummary, _ int) domain.AnswerSummary {
		return adapters.MapAnswerSummaryToDomain(as)
	}), nil
}

func (c *Client) GetAnswer(ctx context.Context, workloadID, lensAlias, questionID string) (*domain.Answer, error) {
	out, err := c.api.GetAnswer(ctx, &wa.GetAnswerInput{
		WorkloadId: aws.String(workloadID),
		LensAlias:  aws.String(lensAlias),
		QuestionId: aws.String(questionID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get answer for question %s: %w", questionID, err)
	}
	if out.Answer == nil {
		return &domain.Answer{QuestionID: questionID, IsApplicable: true}, nil
	}

	return adapters.MapAnswerToDomain(out.Answer), nil
}

func (c *Client) UpdateAnswer(ctx context.Context, update domain.AnswerUpdate) error {
	zerolog.Ctx(ctx).Debug().
		Str("workload_id", update.WorkloadID).
		Str("lens", update.LensAlias).
		Str("question_id", update.QuestionID).
		Int("choices", len(update.ChoiceUpdates)).
		Msg("updating answer")

	_, err := c.api.UpdateAnswer(ctx, &wa.UpdateAnswerInput{
		WorkloadId:    aws.String(update.WorkloadID),
		LensAlias:     aws.String(update.LensAlias),
		QuestionId:    aws.String(update.QuestionID),
		IsApplicable:  update.IsApplicable,
		ChoiceUpdates: adapters.MapChoiceUpdatesToStore(update.ChoiceUpdates),
		Notes:         aws.String(update.Notes),
	})
	if err != nil {
		return fmt.Errorf("failed to update answer for question %s: %w", update.QuestionID, err)
	}
	return nil
}

func (c *Client) ListLenses(ctx context.Context) ([]domain.LensSummary, error) {
	out, err := c.api.ListLenses(ctx, &wa.ListLensesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list lenses: %w", err)
	}

	return lo.Map(out.LensSummaries, func(ls types.LensSummary, _ int) domain.LensSummary {
		return adapters.MapLensSummaryToDomain(ls)
	}), nil
}

func (c *Client) ImportLens(ctx context.Context, req domain.LensImport) (string, error) {
	input := &wa.ImportLensInput{
		JSONString: aws.String(req.JSON),
	}
	if req.Alias != "" {
		input.LensAlias = aws.String(req.Alias)
	}

	out, err := c.api.ImportLens(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to import lens: %w", err)
	}

	if req.Alias != "" {
		return req.Alias, nil
	}
	return aws.ToString(out.LensArn), nil
}

func (c *Client) CreateLensVersion(ctx context.Context, lensAlias, version string) error {
	_, err := c.api.CreateLensVersion(ctx, &wa.CreateLensVersionInput{
		LensAlias:   aws.String(lensAlias),
		LensVersion: aws.String(version),
	})
	if err != nil {
		return fmt.Errorf("failed to create version %s of lens %s: %w", version, lensAlias, err)
	}
	return nil
}

func pageSize(maxResults int32) *int32 {
	if maxResults <= 0 {
		return nil
	}
	return aws.Int32(maxResults)
}
