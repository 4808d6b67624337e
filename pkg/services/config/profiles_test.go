package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetProfiles_SkipsNonProfileSections(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	content := `[default]
region = eu-central-1

[profile review]
region = eu-west-1
sso_session = corp

[sso-session corp]
sso_region = eu-west-1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// When
	registry, err := NewRegistry(path)
	require.NoError(t, err)
	profiles, err := registry.GetProfiles(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, []domain.ConfigProfile{
		{Name: "default", Region: "eu-central-1"},
		{Name: "review", Region: "eu-west-1"},
	}, profiles)
}

func TestNewRegistry_MissingFile_ReturnsError(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestDefaultSharedConfigPath_HonoursEnv(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/tmp/aws-config")

	assert.Equal(t, "/tmp/aws-config", DefaultSharedConfigPath())
}
