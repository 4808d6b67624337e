package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type PublishLensCmd struct {
	templatePath string
	lensVersion  string
	env          EnvFactory
}

func NewPublishLensCmd(env EnvFactory) *cobra.Command {
	pc := &PublishLensCmd{env: env}
	cmd := &cobra.Command{
		Use:   "publish-lens",
		Short: "Publish a new custom lens version, creating the lens if needed",
		RunE:  pc.run,
	}

	cmd.Flags().StringVarP(&pc.templatePath, "template-path", "t", "", "Lens definition file or s3:// location")
	cmd.Flags().StringVarP(&pc.lensVersion, "lens-version", "v", "", "Version to publish")

	_ = cmd.MarkFlagRequired("template-path")
	_ = cmd.MarkFlagRequired("lens-version")

	return cmd
}

func (pc *PublishLensCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := pc.env(ctx)
	if err != nil {
		return err
	}

	alias, err := env.lensService().Publish(ctx, pc.templatePath, pc.lensVersion)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published lens alias %s with version %s\n", alias, pc.lensVersion)
	return nil
}
