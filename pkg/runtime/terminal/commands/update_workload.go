package commands

import (
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/services/workload"
	"github.com/spf13/cobra"
)

type UpdateWorkloadCmd struct {
	templateFile    string
	workloadName    string
	disableStandard bool
	env             EnvFactory
}

func NewUpdateWorkloadCmd(env EnvFactory) *cobra.Command {
	uc := &UpdateWorkloadCmd{env: env}
	cmd := &cobra.Command{
		Use:   "update-workload",
		Short: "Apply a standard or custom lens template to an existing workload",
		RunE:  uc.run,
	}

	cmd.Flags().StringVarP(&uc.templateFile, "template-file", "t", "", "Template file or s3:// location to apply")
	cmd.Flags().StringVarP(&uc.workloadName, "workload-name", "w", "", "Name of the workload to update")
	cmd.Flags().BoolVar(&uc.disableStandard, "disable-standard", false, "Mark every standard lens question not applicable (ignored for the standard lens)")

	_ = cmd.MarkFlagRequired("template-file")
	_ = cmd.MarkFlagRequired("workload-name")

	return cmd
}

func (uc *UpdateWorkloadCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := uc.env(ctx)
	if err != nil {
		return err
	}

	err = env.workloadService().Update(ctx, workload.UpdateRequest{
		TemplatePath:    uc.templateFile,
		Name:            uc.workloadName,
		DisableStandard: uc.disableStandard,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Workload updated with the marked question from the %s file\n", uc.templateFile)
	return nil
}
