package commands

import (
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/runtime/terminal/export"
	"github.com/de-tools/wafr-cli/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	configFile string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the AWS profiles usable with --profile",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configFile, "shared-config", config.DefaultSharedConfigPath(), "Path to the AWS shared config file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(pc.configFile)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", pc.configFile)
		return nil
	}

	return export.NewReporter(cmd.OutOrStdout()).HandleProfiles(profiles)
}
