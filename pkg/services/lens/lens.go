package lens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/gateway"
	"github.com/de-tools/wafr-cli/pkg/store/templatefile"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/tidwall/jsonc"
)

var ErrLensNotFound = errors.New("lens not found")

// Lookup resolves a human-readable lens name to the alias the review service
// expects.
type Lookup interface {
	AliasByName(ctx context.Context, name string) (string, error)
}

type Service struct {
	gateway gateway.Gateway
	files   templatefile.Store
}

var _ Lookup = (*Service)(nil)

func NewService(gw gateway.Gateway, files templatefile.Store) *Service {
	return &Service{gateway: gw, files: files}
}

// AliasByName scans the published lenses for an exact name match.
func (s *Service) AliasByName(ctx context.Context, name string) (string, error) {
	lenses, err := s.gateway.ListLenses(ctx)
	if err != nil {
		return "", err
	}

	found, ok := lo.Find(lenses, func(l domain.LensSummary) bool {
		return l.Name == name
	})
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrLensNotFound, name)
	}
	return found.Alias, nil
}

// Import uploads the lens definition at path, updating the lens of the same
// name when one exists. It returns the alias in effect afterwards.
func (s *Service) Import(ctx context.Context, path string) (string, error) {
	logger := zerolog.Ctx(ctx)

	definition, name, err := s.loadDefinition(ctx, path)
	if err != nil {
		return "", err
	}
	logger.Info().Str("lens_name", name).Msg("importing lens")

	alias, err := s.AliasByName(ctx, name)
	if err != nil && !errors.Is(err, ErrLensNotFound) {
		return "", err
	}

	return s.gateway.ImportLens(ctx, domain.LensImport{Alias: alias, JSON: definition})
}

func (s *Service) CreateVersion(ctx context.Context, alias, version string) error {
	zerolog.Ctx(ctx).Info().Str("lens", alias).Str("version", version).Msg("publishing lens version")
	return s.gateway.CreateLensVersion(ctx, alias, version)
}

// Publish imports the lens definition and publishes it under version.
func (s *Service) Publish(ctx context.Context, path, version string) (string, error) {
	alias, err := s.Import(ctx, path)
	if err != nil {
		return "", err
	}
	if err := s.CreateVersion(ctx, alias, version); err != nil {
		return "", err
	}
	return alias, nil
}

// loadDefinition returns the definition as strict JSON along with its declared
// name. Comments and trailing commas are accepted in the file.
func (s *Service) loadDefinition(ctx context.Context, path string) (string, string, error) {
	raw, err := s.files.Read(ctx, path)
	if err != nil {
		return "", "", err
	}

	definition := jsonc.ToJSON(raw)
	var header struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(definition, &header); err != nil {
		return "", "", fmt.Errorf("failed to parse lens definition %s: %w", path, err)
	}
	if header.Name == "" {
		return "", "", fmt.Errorf("lens definition %s has no name", path)
	}

	return string(definition), header.Name, nil
}
