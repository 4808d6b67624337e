package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"gopkg.in/ini.v1"
)

type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// DefaultSharedConfigPath honours AWS_CONFIG_FILE like the SDK does.
func DefaultSharedConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aws", "config")
	}
	return filepath.Join(home, ".aws", "config")
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared config %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// GetProfiles lists profiles in file order. Sections in the shared config
// file are named "default" or "profile <name>"; sso-session and services
// sections are skipped.
func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range cr.cfg.Sections() {
		name := section.Name()
		switch {
		case name == "default":
		case strings.HasPrefix(name, "profile "):
			name = strings.TrimSpace(strings.TrimPrefix(name, "profile "))
		default:
			continue
		}

		profiles = append(profiles, domain.ConfigProfile{
			Name:   name,
			Region: section.Key("region").String(),
		})
	}
	return profiles, nil
}
