package domain

// TemplateChoice is a choice entry of a parsed template. Status, Reason and
// Notes are nil when the key is absent from the template.
type TemplateChoice struct {
	ID     string
	Title  string
	Status *string
	Reason *string
	Notes  *string
}

type TemplateQuestion struct {
	Label         string
	QuestionID    string
	Title         string
	Notes         string
	NotApplicable bool
	// HasAnswers reports whether the answers key was present.
	HasAnswers bool
	Answers    []TemplateChoice
}

type TemplatePillar struct {
	Key       string
	Questions []TemplateQuestion
}

// Template is a parsed template with the lens key split off.
type Template struct {
	Lens    string
	Pillars []TemplatePillar
}
