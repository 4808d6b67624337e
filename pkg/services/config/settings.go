package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds everything the commands need besides their flags.
type Settings struct {
	Profile           string            `mapstructure:"profile"`
	Region            string            `mapstructure:"region"`
	LogLevel          string            `mapstructure:"log_level"`
	StandardTemplate  string            `mapstructure:"standard_template"`
	StandardLensAlias string            `mapstructure:"standard_lens_alias"`
	StandardLensLabel string            `mapstructure:"standard_lens_label"`
	CustomLenses      map[string]string `mapstructure:"custom_lenses"`
	ListPageSize      int32             `mapstructure:"list_page_size"`
	AnswersPageSize   int32             `mapstructure:"answers_page_size"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", "")
	v.SetDefault("region", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("standard_template", "templates/standard.yaml")
	v.SetDefault("standard_lens_alias", "wellarchitected")
	v.SetDefault("standard_lens_label", "AWS Well-Architected Framework")
	v.SetDefault("custom_lenses", map[string]string{"eks": "EKS Lens"})
	v.SetDefault("list_page_size", 20)
	v.SetDefault("answers_page_size", 30)
}

// LoadSettings reads the optional settings file at path and overlays WAFR_*
// environment variables on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("wafr")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if s.ListPageSize <= 0 || s.AnswersPageSize <= 0 {
		return nil, fmt.Errorf("page sizes must be positive, got list=%d answers=%d", s.ListPageSize, s.AnswersPageSize)
	}
	return &s, nil
}

// CustomLensLabel returns the lens name configured for a --custom-lens selector.
func (s *Settings) CustomLensLabel(selector string) (string, error) {
	label, ok := s.CustomLenses[selector]
	if !ok {
		return "", fmt.Errorf("unknown custom lens %q, configured: %s", selector, strings.Join(s.customSelectors(), ", "))
	}
	return label, nil
}

func (s *Settings) customSelectors() []string {
	selectors := make([]string, 0, len(s.CustomLenses))
	for k := range s.CustomLenses {
		selectors = append(selectors, k)
	}
	return selectors
}
