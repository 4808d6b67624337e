package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuilder_Render_Indentation(t *testing.T) {
	// Given
	b := NewBuilder()
	b.Scalar(0, "lens", "EKS Lens")
	b.Header(0, "security")
	b.Item(1, "label", "SEC 1")
	b.Scalar(2, "question_id", "securely-operate")
	b.Header(2, "answers")
	b.Item(3, "id", "sec_securely_operate_multi_accounts")
	b.Scalar(4, "title", "Separate workloads using accounts")
	b.Scalar(4, "status", "SELECTED")

	// When
	got := b.Render()

	// Then
	assert.Equal(t, []string{
		"lens: EKS Lens",
		"security:",
		"  - label: SEC 1",
		"    question_id: securely-operate",
		"    answers:",
		"      - id: sec_securely_operate_multi_accounts",
		"        title: Separate workloads using accounts",
		"        status: SELECTED",
	}, got)
}

func TestBuilder_Block_IndentsOneLevelDeeper(t *testing.T) {
	b := NewBuilder()
	b.Block(2, "notes", "first line\n\nthird line")

	assert.Equal(t, []string{
		"    notes: |-",
		"      first line",
		"",
		"      third line",
	}, b.Render())
}

func TestBuilder_Block_LeadingSpacesUseExplicitIndent(t *testing.T) {
	b := NewBuilder()
	b.Header(0, "root")
	b.Block(1, "notes", "  indented\nflush")

	var decoded map[string]map[string]string
	err := yaml.Unmarshal(b.Bytes(), &decoded)

	assert.NoError(t, err)
	assert.Equal(t, "  indented\nflush", decoded["root"]["notes"])
}

func TestBuilder_Block_ChompingFollowsTrailingNewlines(t *testing.T) {
	tests := []struct {
		text   string
		header string
	}{
		{text: "a\nb", header: "notes: |-"},
		{text: "a\nb\n", header: "notes: |"},
		{text: "a\nb\n\n", header: "notes: |+"},
	}

	for _, tt := range tests {
		b := NewBuilder()
		b.Block(0, "notes", tt.text)

		assert.Equal(t, tt.header, b.Render()[0])

		var decoded map[string]string
		require.NoError(t, yaml.Unmarshal(b.Bytes(), &decoded))
		assert.Equal(t, tt.text, decoded["notes"])
	}
}

func TestBuilder_Block_QuotesTextALiteralCannotHold(t *testing.T) {
	for _, text := range []string{"\n\n", "a\r\nb", "a\x01b\nc", "a\n  \nb"} {
		b := NewBuilder()
		b.Block(0, "notes", text)

		require.Len(t, b.Render(), 1)
		var decoded map[string]string
		require.NoError(t, yaml.Unmarshal(b.Bytes(), &decoded))
		assert.Equal(t, text, decoded["notes"])
	}
}

func TestBuilder_Raw_IsNotQuoted(t *testing.T) {
	b := NewBuilder()
	b.Raw(2, "not_applicable", "true")

	assert.Equal(t, []string{"    not_applicable: true"}, b.Render())
}

func TestScalar_QuotesWhenPlainWouldNotReadBack(t *testing.T) {
	cases := map[string]string{
		"plain text":          "plain text",
		"How do you operate?": "How do you operate?",
		"key: value":          `"key: value"`,
		"true":                `"true"`,
		"42":                  `"42"`,
		"# comment":           `"# comment"`,
		"trailing # comment":  `"trailing # comment"`,
		" leading space":      `" leading space"`,
		"null":                `"null"`,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, scalar(in))
		})
	}
}

func TestScalar_QuotedValuesReadBack(t *testing.T) {
	for _, in := range []string{"key: value", "true", "- item", "[x]", `say "hi"`, "tab\there"} {
		var decoded map[string]string
		err := yaml.Unmarshal([]byte("k: "+scalar(in)), &decoded)

		assert.NoError(t, err, in)
		assert.Equal(t, in, decoded["k"])
	}
}
