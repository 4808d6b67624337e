package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_NoFile_UsesDefaults(t *testing.T) {
	// When
	s, err := LoadSettings("")

	// Then
	require.NoError(t, err)
	assert.Empty(t, s.Region, "an unset region lets the profile's region apply")
	assert.Equal(t, "templates/standard.yaml", s.StandardTemplate)
	assert.Equal(t, "wellarchitected", s.StandardLensAlias)
	assert.Equal(t, "AWS Well-Architected Framework", s.StandardLensLabel)
	assert.Equal(t, int32(20), s.ListPageSize)
	assert.Equal(t, int32(30), s.AnswersPageSize)
	assert.Equal(t, "EKS Lens", s.CustomLenses["eks"])
}

func TestLoadSettings_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "wafr.yaml")
	content := `profile: review
region: eu-west-1
standard_template: /opt/templates/standard.yaml
custom_lenses:
  serverless: Serverless Lens
answers_page_size: 50`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	s, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "review", s.Profile)
	assert.Equal(t, "eu-west-1", s.Region)
	assert.Equal(t, "/opt/templates/standard.yaml", s.StandardTemplate)
	assert.Equal(t, int32(50), s.AnswersPageSize)
	label, err := s.CustomLensLabel("serverless")
	require.NoError(t, err)
	assert.Equal(t, "Serverless Lens", label)
}

func TestLoadSettings_EnvironmentOverride(t *testing.T) {
	t.Setenv("WAFR_STANDARD_LENS_ALIAS", "custom-standard")

	s, err := LoadSettings("")

	require.NoError(t, err)
	assert.Equal(t, "custom-standard", s.StandardLensAlias)
}

func TestLoadSettings_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: eu:1: bad"), 0o644))

	_, err := LoadSettings(path)

	assert.Error(t, err)
}

func TestSettings_CustomLensLabel_Unknown(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	_, err = s.CustomLensLabel("nope")

	assert.ErrorContains(t, err, `unknown custom lens "nope"`)
}
