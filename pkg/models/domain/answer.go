package domain

type ChoiceStatus string

const (
	ChoiceStatusSelected      ChoiceStatus = "SELECTED"
	ChoiceStatusNotApplicable ChoiceStatus = "NOT_APPLICABLE"
	ChoiceStatusUnselected    ChoiceStatus = "UNSELECTED"
)

type Choice struct {
	ID    string
	Title string
}

// ChoiceAnswer is a choice mark as recorded by the review service.
type ChoiceAnswer struct {
	ChoiceID string
	Status   ChoiceStatus
	Reason   string
	Notes    string
}

// AnswerSummary is one entry of a per-pillar answer listing.
type AnswerSummary struct {
	QuestionID    string
	QuestionTitle string
	IsApplicable  bool
	Choices       []Choice
}

// Answer is the full detail of a single question's answer.
type Answer struct {
	QuestionID    string
	Notes         *string
	IsApplicable  bool
	ChoiceAnswers []ChoiceAnswer
}

type ChoiceUpdate struct {
	Status ChoiceStatus
	Reason string
	Notes  string
}

// AnswerUpdate carries either an applicability change or a set of choice updates.
type AnswerUpdate struct {
	WorkloadID    string
	LensAlias     string
	QuestionID    string
	IsApplicable  *bool
	ChoiceUpdates map[string]ChoiceUpdate
	Notes         string
}
