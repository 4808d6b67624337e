package template

import (
	"context"
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Indentation levels of the template hierarchy.
const (
	levelPillar = iota
	levelQuestion
	levelQuestionField
	levelChoice
	levelChoiceField
)

const (
	LensKey          = "lens"
	keyLabel         = "label"
	keyQuestionID    = "question_id"
	keyTitle         = "title"
	keyNotes         = "notes"
	keyNotApplicable = "not_applicable"
	keyAnswers       = "answers"
	keyChoiceID      = "id"
	keyStatus        = "status"
	keyReason        = "reason"
)

type GenerateRequest struct {
	WorkloadID string
	LensAlias  string
	// LensLabel is written as the template's lens key.
	LensLabel string
	// IncludeMarks embeds the workload's current applicability and choice marks.
	IncludeMarks bool
}

type Generator struct {
	gateway  gateway.Gateway
	pageSize int32
}

// NewGenerator returns a Generator fetching at most pageSize answers per pillar.
// There is no pagination: larger pillars are truncated.
func NewGenerator(gw gateway.Gateway, pageSize int32) *Generator {
	return &Generator{gateway: gw, pageSize: pageSize}
}

func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*Builder, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("workload_id", req.WorkloadID).
		Str("lens", req.LensAlias).
		Logger()

	b := NewBuilder()
	b.Scalar(levelPillar, LensKey, req.LensLabel)

	for _, pillar := range domain.Pillars {
		answers, err := g.gateway.ListAnswers(ctx, req.WorkloadID, req.LensAlias, pillar.ID, g.pageSize)
		if err != nil {
			return nil, err
		}

		b.Header(levelPillar, pillar.ID)
		for i, summary := range answers {
			detail, err := g.gateway.GetAnswer(ctx, req.WorkloadID, req.LensAlias, summary.QuestionID)
			if err != nil {
				return nil, err
			}
			appendQuestion(b, pillar, i+1, summary, detail, req.IncludeMarks)
		}

		logger.Debug().Str("pillar", pillar.ID).Int("questions", len(answers)).Msg("pillar generated")
	}

	return b, nil
}

func appendQuestion(
	b *Builder,
	pillar domain.Pillar,
	counter int,
	summary domain.AnswerSummary,
	detail *domain.Answer,
	includeMarks bool,
) {
	b.Item(levelQuestion, keyLabel, fmt.Sprintf("%s %d", pillar.Label, counter))
	b.Scalar(levelQuestionField, keyQuestionID, summary.QuestionID)
	b.Scalar(levelQuestionField, keyTitle, summary.QuestionTitle)
	if detail != nil && detail.Notes != nil && *detail.Notes != "" {
		b.Block(levelQuestionField, keyNotes, *detail.Notes)
	}

	if includeMarks && !summary.IsApplicable {
		b.Raw(levelQuestionField, keyNotApplicable, "true")
		return
	}

	var marked []domain.ChoiceAnswer
	if detail != nil {
		marked = detail.ChoiceAnswers
	}

	b.Header(levelQuestionField, keyAnswers)
	for _, choice := range summary.Choices {
		b.Item(levelChoice, keyChoiceID, choice.ID)
		b.Scalar(levelChoiceField, keyTitle, choice.Title)
		if includeMarks {
			appendChoiceMark(b, choice, marked)
		}
	}
}

// appendChoiceMark writes nothing for a choice without a recorded mark, which
// the reconciler reads as "leave unchanged".
func appendChoiceMark(b *Builder, choice domain.Choice, marked []domain.ChoiceAnswer) {
	mark, ok := lo.Find(marked, func(ca domain.ChoiceAnswer) bool {
		return ca.ChoiceID == choice.ID
	})
	if !ok || mark.Status == "" {
		return
	}

	b.Scalar(levelChoiceField, keyStatus, string(mark.Status))
	if mark.Status == domain.ChoiceStatusNotApplicable {
		b.Scalar(levelChoiceField, keyReason, mark.Reason)
		b.Scalar(levelChoiceField, keyNotes, mark.Notes)
	}
}
