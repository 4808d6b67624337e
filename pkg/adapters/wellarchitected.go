package adapters

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/wellarchitected/types"
	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/samber/lo"
)

func MapWorkloadSummaryToDomain(ws types.WorkloadSummary) domain.WorkloadSummary {
	return domain.WorkloadSummary{
		ID:   aws.ToString(ws.WorkloadId),
		Name: aws.ToString(ws.WorkloadName),
	}
}

func MapWorkloadToDomain(w *types.Workload) *domain.Workload {
	if w == nil {
		return nil
	}

	return &domain.Workload{
		ID:          aws.ToString(w.WorkloadId),
		Name:        aws.ToString(w.WorkloadName),
		Description: aws.ToString(w.Description),
		Environment: domain.Environment(w.Environment),
		AccountIDs:  w.AccountIds,
		Regions:     w.AwsRegions,
		ReviewOwner: aws.ToString(w.ReviewOwner),
		Lenses:      w.Lenses,
	}
}

// MapLensSummaryToDomain prefers the lens alias and falls back to the ARN,
// which is what custom lenses are addressed by.
func MapLensSummaryToDomain(ls types.LensSummary) domain.LensSummary {
	alias := aws.ToString(ls.LensAlias)
	if alias == "" {
		alias = aws.ToString(ls.LensArn)
	}

	return domain.LensSummary{
		Alias:   alias,
		Name:    aws.ToString(ls.LensName),
		Version: aws.ToString(ls.LensVersion),
	}
}

func MapAnswerSummaryToDomain(as types.AnswerSummary) domain.AnswerSummary {
	return domain.AnswerSummary{
		QuestionID:    aws.ToString(as.QuestionId),
		QuestionTitle: aws.ToString(as.QuestionTitle),
		IsApplicable:  applicable(as.IsApplicable),
		Choices: lo.Map(as.Choices, func(c types.Choice, _ int) domain.Choice {
			return domain.Choice{
				ID:    aws.ToString(c.ChoiceId),
				Title: aws.ToString(c.Title),
			}
		}),
	}
}

func MapAnswerToDomain(a *types.Answer) *domain.Answer {
	if a == nil {
		return nil
	}

	return &domain.Answer{
		QuestionID:   aws.ToString(a.QuestionId),
		Notes:        a.Notes,
		IsApplicable: applicable(a.IsApplicable),
		ChoiceAnswers: lo.Map(a.ChoiceAnswers, func(ca types.ChoiceAnswer, _ int) domain.ChoiceAnswer {
			return domain.ChoiceAnswer{
				ChoiceID: aws.ToString(ca.ChoiceId),
				Status:   domain.ChoiceStatus(ca.Status),
				Reason:   string(ca.Reason),
				Notes:    aws.ToString(ca.Notes),
			}
		}),
	}
}

func MapChoiceUpdatesToStore(updates map[string]domain.ChoiceUpdate) map[string]types.ChoiceUpdate {
	if len(updates) == 0 {
		return nil
	}

	return lo.MapValues(updates, func(u domain.ChoiceUpdate, _ string) types.ChoiceUpdate {
		cu := types.ChoiceUpdate{Status: types.ChoiceStatus(u.Status)}
		if u.Status != domain.ChoiceStatusSelected {
			cu.Reason = types.ChoiceReason(u.Reason)
			cu.Notes = aws.String(u.Notes)
		}
		return cu
	})
}

// applicable treats a missing flag as applicable.
func applicable(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
