package workload

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway/gatewaytest"
	"github.com/de-tools/wafr-cli/pkg/services/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const markedTemplate = `lens: EKS Lens
security:
  - label: SEC 1
    question_id: q-access
    title: Access
    notes: team notes
    answers:
      - id: c-selected
        title: Selected
        status: SELECTED
      - id: c-na
        title: Not applicable
        status: NOT_APPLICABLE
        reason: OUT_OF_SCOPE
        notes: platform owned
      - id: c-untouched
        title: Untouched
  - label: SEC 2
    question_id: q-isolation
    title: Isolation
    not_applicable: true
    notes: not relevant
    answers:
      - id: c-ignored
        title: Ignored
        status: SELECTED
reliability:
  - label: REL 1
    question_id: q-quotas
    title: Quotas
    answers:
      - id: c-quota
        title: Quota
`

func parse(t *testing.T, doc string) *domain.Template {
	t.Helper()
	tmpl, err := template.Parse([]byte(doc))
	require.NoError(t, err)
	return tmpl
}

func TestReconciler_Apply_IssuesExpectedUpdates(t *testing.T) {
	// Given
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.Anything).Return(nil)
	r := NewReconciler(gw)

	// When
	res, err := r.Apply(context.Background(), "wl-1", parse(t, markedTemplate), "arn:eks")

	// Then
	require.NoError(t, err)
	assert.Equal(t, Result{Questions: 3, Updates: 3}, res)
	assert.Equal(t, []domain.AnswerUpdate{
		{
			WorkloadID:    "wl-1",
			LensAlias:     "arn:eks",
			QuestionID:    "q-access",
			ChoiceUpdates: map[string]domain.ChoiceUpdate{"c-selected": {Status: domain.ChoiceStatusSelected}},
			Notes:         "team notes",
		},
		{
			WorkloadID: "wl-1",
			LensAlias:  "arn:eks",
			QuestionID: "q-access",
			ChoiceUpdates: map[string]domain.ChoiceUpdate{
				"c-na": {Status: domain.ChoiceStatusNotApplicable, Reason: "OUT_OF_SCOPE", Notes: "platform owned"},
			},
			Notes: "team notes",
		},
		{
			WorkloadID:   "wl-1",
			LensAlias:    "arn:eks",
			QuestionID:   "q-isolation",
			IsApplicable: aws.Bool(false),
			Notes:        "not relevant",
		},
	}, gw.UpdateCalls())
}

func TestReconciler_Apply_NotApplicableQuestionTouchesNoChoices(t *testing.T) {
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.Anything).Return(nil)

	_, err := NewReconciler(gw).Apply(context.Background(), "wl-1", parse(t, markedTemplate), "arn:eks")

	require.NoError(t, err)
	for _, u := range gw.UpdateCalls() {
		if u.QuestionID == "q-isolation" {
			assert.Nil(t, u.ChoiceUpdates)
		}
		assert.NotContains(t, u.ChoiceUpdates, "c-ignored")
	}
}

func TestReconciler_Apply_ChoicesWithoutStatusAreNeverReferenced(t *testing.T) {
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.Anything).Return(nil)

	_, err := NewReconciler(gw).Apply(context.Background(), "wl-1", parse(t, markedTemplate), "arn:eks")

	require.NoError(t, err)
	for _, u := range gw.UpdateCalls() {
		assert.NotContains(t, u.ChoiceUpdates, "c-untouched")
		assert.NotContains(t, u.ChoiceUpdates, "c-quota")
		assert.NotEqual(t, "q-quotas", u.QuestionID)
	}
}

func TestReconciler_Apply_IsIdempotent(t *testing.T) {
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.Anything).Return(nil)
	r := NewReconciler(gw)
	tmpl := parse(t, markedTemplate)

	_, err := r.Apply(context.Background(), "wl-1", tmpl, "arn:eks")
	require.NoError(t, err)
	first := gw.UpdateCalls()
	_, err = r.Apply(context.Background(), "wl-1", tmpl, "arn:eks")
	require.NoError(t, err)
	all := gw.UpdateCalls()

	require.Len(t, all, 2*len(first))
	assert.Equal(t, first, all[len(first):])
}

func TestReconciler_Apply_NonSelectedStatusRequiresReasonAndNotes(t *testing.T) {
	cases := map[string]string{
		"missing reason": `lens: x
security:
  - question_id: q1
    answers:
      - id: c1
        status: NOT_APPLICABLE
        notes: n
`,
		"missing notes": `lens: x
security:
  - question_id: q1
    answers:
      - id: c1
        status: NOT_APPLICABLE
        reason: OTHER
`,
		"unselected without reason": `lens: x
security:
  - question_id: q1
    answers:
      - id: c1
        status: UNSELECTED
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			gw := new(gatewaytest.MockGateway)

			_, err := NewReconciler(gw).Apply(context.Background(), "wl-1", parse(t, doc), "arn:eks")

			assert.ErrorIs(t, err, template.ErrMissingField)
			gw.AssertNotCalled(t, "UpdateAnswer", mock.Anything, mock.Anything)
		})
	}
}

func TestReconciler_Apply_ApplicableQuestionWithoutAnswersIsAnError(t *testing.T) {
	gw := new(gatewaytest.MockGateway)

	_, err := NewReconciler(gw).Apply(context.Background(), "wl-1", parse(t, "lens: x\nsecurity:\n  - question_id: q1\n"), "arn:eks")

	assert.ErrorIs(t, err, template.ErrMissingField)
	assert.ErrorContains(t, err, "answers")
}

func TestReconciler_Apply_FailureStopsPartway(t *testing.T) {
	// Given
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.MatchedBy(func(u domain.AnswerUpdate) bool {
		return u.QuestionID == "q-access"
	})).Return(nil)
	gw.On("UpdateAnswer", mock.Anything, mock.MatchedBy(func(u domain.AnswerUpdate) bool {
		return u.QuestionID == "q-isolation"
	})).Return(errors.New("throttled"))

	// When
	res, err := NewReconciler(gw).Apply(context.Background(), "wl-1", parse(t, markedTemplate), "arn:eks")

	// Then
	assert.ErrorContains(t, err, "throttled")
	assert.Equal(t, 2, res.Updates)
	assert.Equal(t, 1, res.Questions)
}

func TestReconciler_DisableQuestions_EveryQuestionOnce(t *testing.T) {
	// Given
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.Anything).Return(nil)

	// When
	res, err := NewReconciler(gw).DisableQuestions(context.Background(), "wl-1", parse(t, markedTemplate), "wellarchitected")

	// Then
	require.NoError(t, err)
	assert.Equal(t, 3, res.Updates)
	for _, u := range gw.UpdateCalls() {
		assert.Equal(t, "wellarchitected", u.LensAlias)
		assert.False(t, aws.ToBool(u.IsApplicable))
		require.NotNil(t, u.IsApplicable)
		assert.Equal(t, "", u.Notes)
		assert.Nil(t, u.ChoiceUpdates)
	}
	ids := []string{}
	for _, u := range gw.UpdateCalls() {
		ids = append(ids, u.QuestionID)
	}
	assert.Equal(t, []string{"q-access", "q-isolation", "q-quotas"}, ids)
}

func TestReconciler_Apply_EmptyNotesKeyIsAccepted(t *testing.T) {
	// Given
	gw := new(gatewaytest.MockGateway)
	gw.On("UpdateAnswer", mock.Anything, mock.Anything).Return(nil)
	tmpl := parse(t, `lens: EKS Lens
security:
  - label: SEC 1
    question_id: q-access
    title: Access
    answers:
      - id: c-na
        title: Not applicable
        status: NOT_APPLICABLE
        reason: OUT_OF_SCOPE
        notes: ""
`)

	// When
	res, err := NewReconciler(gw).Apply(context.Background(), "wl-1", tmpl, "arn:eks")

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updates)
	assert.Equal(t, []domain.AnswerUpdate{{
		WorkloadID: "wl-1",
		LensAlias:  "arn:eks",
		QuestionID: "q-access",
		ChoiceUpdates: map[string]domain.ChoiceUpdate{
			"c-na": {Status: domain.ChoiceStatusNotApplicable, Reason: "OUT_OF_SCOPE"},
		},
	}}, gw.UpdateCalls())
}
