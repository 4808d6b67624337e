package template

import (
	"errors"
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

// ErrMissingField reports a key the template must carry but does not.
var ErrMissingField = errors.New("template field missing")

// Parse reads a template document. The lens key is split off into
// Template.Lens; every other top-level key is a pillar, kept in document order.
func Parse(data []byte) (*domain.Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty template: %w", missing(LensKey))
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("template root must be a mapping, line %d", root.Line)
	}

	tmpl := &domain.Template{}
	hasLens := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]

		if key == LensKey {
			if err := value.Decode(&tmpl.Lens); err != nil {
				return nil, fmt.Errorf("invalid lens, line %d: %w", value.Line, err)
			}
			hasLens = true
			continue
		}

		questions, err := parseQuestions(value)
		if err != nil {
			return nil, fmt.Errorf("pillar %s: %w", key, err)
		}
		tmpl.Pillars = append(tmpl.Pillars, domain.TemplatePillar{Key: key, Questions: questions})
	}

	if !hasLens {
		return nil, missing(LensKey)
	}
	return tmpl, nil
}

func parseQuestions(node *yaml.Node) ([]domain.TemplateQuestion, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of questions, line %d", node.Line)
	}

	questions := make([]domain.TemplateQuestion, 0, len(node.Content))
	for _, item := range node.Content {
		q, err := parseQuestion(item)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func parseQuestion(node *yaml.Node) (domain.TemplateQuestion, error) {
	var q domain.TemplateQuestion
	if node.Kind != yaml.MappingNode {
		return q, fmt.Errorf("expected a question mapping, line %d", node.Line)
	}

	hasID := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]

		var err error
		switch key {
		case keyLabel:
			err = decodeString(value, &q.Label)
		case keyQuestionID:
			err = decodeString(value, &q.QuestionID)
			hasID = true
		case keyTitle:
			err = decodeString(value, &q.Title)
		case keyNotes:
			err = decodeString(value, &q.Notes)
		case keyNotApplicable:
			if !isNull(value) {
				err = value.Decode(&q.NotApplicable)
			}
		case keyAnswers:
			q.HasAnswers = true
			q.Answers, err = parseChoices(value)
		}
		if err != nil {
			return q, fmt.Errorf("question %q key %s, line %d: %w", q.Label, key, value.Line, err)
		}
	}

	if !hasID || q.QuestionID == "" {
		return q, fmt.Errorf("question at line %d: %w", node.Line, missing(keyQuestionID))
	}
	return q, nil
}

func parseChoices(node *yaml.Node) ([]domain.TemplateChoice, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of answers")
	}

	choices := make([]domain.TemplateChoice, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("expected an answer mapping, line %d", item.Line)
		}

		var c domain.TemplateChoice
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i].Value, item.Content[i+1]

			var err error
			switch key {
			case keyChoiceID:
				err = decodeString(value, &c.ID)
			case keyTitle:
				err = decodeString(value, &c.Title)
			case keyStatus:
				c.Status, err = decodeOptional(value)
			case keyReason:
				c.Reason, err = decodeOptional(value)
			case keyNotes:
				c.Notes, err = decodeOptional(value)
			}
			if err != nil {
				return nil, fmt.Errorf("answer key %s, line %d: %w", key, value.Line, err)
			}
		}
		choices = append(choices, c)
	}
	return choices, nil
}

// decodeOptional returns a non-nil pointer whenever the key is present,
// including an explicit null.
func decodeOptional(node *yaml.Node) (*string, error) {
	var s string
	if err := decodeString(node, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeString(node *yaml.Node, dst *string) error {
	if isNull(node) {
		*dst = ""
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar value")
	}
	return node.Decode(dst)
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func missing(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, key)
}
