package workload

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway"
	"github.com/de-tools/wafr-cli/pkg/services/template"
	"github.com/rs/zerolog"
)

// Result counts what a reconciliation pass touched.
type Result struct {
	Questions int
	Updates   int
}

// Reconciler pushes the marks of a parsed template to a workload. Each
// question is handled independently and a failure stops the pass, leaving
// earlier questions updated.
type Reconciler struct {
	gateway gateway.Gateway
}

func NewReconciler(gw gateway.Gateway) *Reconciler {
	return &Reconciler{gateway: gw}
}

// Apply issues one update per not-applicable question and one update per
// choice carrying a status. Choices without a status are left untouched.
func (r *Reconciler) Apply(ctx context.Context, workloadID string, tmpl *domain.Template, lensAlias string) (Result, error) {
	var res Result
	for _, pillar := range tmpl.Pillars {
		for _, q := range pillar.Questions {
			updates, err := r.applyQuestion(ctx, workloadID, lensAlias, q)
			res.Updates += updates
			if err != nil {
				return res, fmt.Errorf("pillar %s question %s: %w", pillar.Key, q.QuestionID, err)
			}
			res.Questions++
		}
	}

	zerolog.Ctx(ctx).Info().
		Str("workload_id", workloadID).
		Str("lens", lensAlias).
		Int("questions", res.Questions).
		Int("updates", res.Updates).
		Msg("template applied")
	return res, nil
}

func (r *Reconciler) applyQuestion(ctx context.Context, workloadID, lensAlias string, q domain.TemplateQuestion) (int, error) {
	if q.NotApplicable {
		err := r.gateway.UpdateAnswer(ctx, domain.AnswerUpdate{
			WorkloadID:   workloadID,
			LensAlias:    lensAlias,
			QuestionID:   q.QuestionID,
			IsApplicable: aws.Bool(false),
			Notes:        q.Notes,
		})
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	if !q.HasAnswers {
		return 0, fmt.Errorf("%w: answers", template.ErrMissingField)
	}

	updates := 0
	for _, choice := range q.Answers {
		if choice.Status == nil {
			continue
		}

		id, cu, err := choiceUpdate(choice)
		if err != nil {
			return updates, err
		}

		err = r.gateway.UpdateAnswer(ctx, domain.AnswerUpdate{
			WorkloadID:    workloadID,
			LensAlias:     lensAlias,
			QuestionID:    q.QuestionID,
			ChoiceUpdates: map[string]domain.ChoiceUpdate{id: cu},
			Notes:         q.Notes,
		})
		if err != nil {
			return updates, err
		}
		updates++
	}
	return updates, nil
}

// choiceUpdate builds the payload for a choice with a status. Any status other
// than SELECTED needs a non-empty reason and a notes key. The notes value may
// be empty: the service stores NOT_APPLICABLE choices without notes and the
// generator writes them back as a bare `notes:` key, so rejecting it would break
// re-applying a generated template.
func choiceUpdate(choice domain.TemplateChoice) (string, domain.ChoiceUpdate, error) {
	if choice.ID == "" {
		return "", domain.ChoiceUpdate{}, fmt.Errorf("%w: id", template.ErrMissingField)
	}

	status := domain.ChoiceStatus(*choice.Status)
	if status == domain.ChoiceStatusSelected {
		return choice.ID, domain.ChoiceUpdate{Status: status}, nil
	}

	if choice.Reason == nil || *choice.Reason == "" {
		return "", domain.ChoiceUpdate{}, fmt.Errorf("choice %s: %w: reason", choice.ID, template.ErrMissingField)
	}
	if choice.Notes == nil {
		return "", domain.ChoiceUpdate{}, fmt.Errorf("choice %s: %w: notes", choice.ID, template.ErrMissingField)
	}

	return choice.ID, domain.ChoiceUpdate{
		Status: status,
		Reason: *choice.Reason,
		Notes:  *choice.Notes,
	}, nil
}

// DisableQuestions marks every question of tmpl not applicable on lensAlias
// with empty notes, overwriting whatever was recorded before.
func (r *Reconciler) DisableQuestions(ctx context.Context, workloadID string, tmpl *domain.Template, lensAlias string) (Result, error) {
	var res Result
	for _, pillar := range tmpl.Pillars {
		for _, q := range pillar.Questions {
			err := r.gateway.UpdateAnswer(ctx, domain.AnswerUpdate{
				WorkloadID:   workloadID,
				LensAlias:    lensAlias,
				QuestionID:   q.QuestionID,
				IsApplicable: aws.Bool(false),
			})
			if err != nil {
				return res, fmt.Errorf("disable question %s: %w", q.QuestionID, err)
			}
			res.Questions++
			res.Updates++
		}
	}

	zerolog.Ctx(ctx).Info().
		Str("workload_id", workloadID).
		Str("lens", lensAlias).
		Int("questions", res.Questions).
		Msg("questions disabled")
	return res, nil
}
