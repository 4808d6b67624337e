package lens

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway/gatewaytest"
	"github.com/de-tools/wafr-cli/pkg/store/templatefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var publishedLenses = []domain.LensSummary{
	{Alias: "wellarchitected", Name: "AWS Well-Architected Framework"},
	{Alias: "arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", Name: "EKS Lens"},
}

func writeLens(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lens.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAliasByName_Found(t *testing.T) {
	gw := new(gatewaytest.MockGateway)
	gw.On("ListLenses", mock.Anything).Return(publishedLenses, nil)

	alias, err := NewService(gw, nil).AliasByName(context.Background(), "EKS Lens")

	require.NoError(t, err)
	assert.Equal(t, "arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", alias)
}

func TestAliasByName_NotFound(t *testing.T) {
	gw := new(gatewaytest.MockGateway)
	gw.On("ListLenses", mock.Anything).Return(publishedLenses, nil)

	_, err := NewService(gw, nil).AliasByName(context.Background(), "Serverless Lens")

	assert.ErrorIs(t, err, ErrLensNotFound)
}

func TestImport_ExistingLensReusesAlias(t *testing.T) {
	// Given
	path := writeLens(t, `{
  // custom EKS lens
  "schemaVersion": "2021-11-01",
  "name": "EKS Lens",
  "pillars": [],
}`)
	gw := new(gatewaytest.MockGateway)
	gw.On("ListLenses", mock.Anything).Return(publishedLenses, nil)
	gw.On("ImportLens", mock.Anything, mock.MatchedBy(func(req domain.LensImport) bool {
		return req.Alias == "arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks"
	})).Return("arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", nil)

	// When
	alias, err := NewService(gw, templatefile.NewStore(nil)).Import(context.Background(), path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", alias)
	req := gw.Calls[1].Arguments.Get(1).(domain.LensImport)
	assert.JSONEq(t, `{"schemaVersion":"2021-11-01","name":"EKS Lens","pillars":[]}`, req.JSON)
}

func TestImport_NewLensOmitsAlias(t *testing.T) {
	path := writeLens(t, `{"name": "Serverless Lens"}`)
	gw := new(gatewaytest.MockGateway)
	gw.On("ListLenses", mock.Anything).Return(publishedLenses, nil)
	gw.On("ImportLens", mock.Anything, mock.MatchedBy(func(req domain.LensImport) bool {
		return req.Alias == ""
	})).Return("arn:new", nil)

	alias, err := NewService(gw, templatefile.NewStore(nil)).Import(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "arn:new", alias)
}

func TestImport_DefinitionWithoutName(t *testing.T) {
	path := writeLens(t, `{"pillars": []}`)
	gw := new(gatewaytest.MockGateway)

	_, err := NewService(gw, templatefile.NewStore(nil)).Import(context.Background(), path)

	assert.ErrorContains(t, err, "has no name")
	gw.AssertNotCalled(t, "ImportLens", mock.Anything, mock.Anything)
}

func TestImport_ListFailureAborts(t *testing.T) {
	path := writeLens(t, `{"name": "EKS Lens"}`)
	gw := new(gatewaytest.MockGateway)
	gw.On("ListLenses", mock.Anything).Return(nil, errors.New("denied"))

	_, err := NewService(gw, templatefile.NewStore(nil)).Import(context.Background(), path)

	assert.ErrorContains(t, err, "denied")
	gw.AssertNotCalled(t, "ImportLens", mock.Anything, mock.Anything)
}

func TestPublish_ImportsThenCreatesVersion(t *testing.T) {
	path := writeLens(t, `{"name": "EKS Lens"}`)
	gw := new(gatewaytest.MockGateway)
	gw.On("ListLenses", mock.Anything).Return(publishedLenses, nil)
	gw.On("ImportLens", mock.Anything, mock.Anything).Return("arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", nil)
	gw.On("CreateLensVersion", mock.Anything, "arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", "1.2").Return(nil)

	alias, err := NewService(gw, templatefile.NewStore(nil)).Publish(context.Background(), path, "1.2")

	require.NoError(t, err)
	assert.Equal(t, "arn:aws:wellarchitected:eu-central-1:123456789012:lens/eks", alias)
	gw.AssertExpectations(t)
}
