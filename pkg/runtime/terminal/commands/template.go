package commands

import (
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/runtime/terminal/export"
	"github.com/de-tools/wafr-cli/pkg/services/template"
	"github.com/spf13/cobra"
)

type ManageTemplateCmd struct {
	workloadID    string
	outputFile    string
	saveWorkload  bool
	listWorkloads bool
	customLens    string
	env           EnvFactory
}

func NewManageTemplateCmd(env EnvFactory) *cobra.Command {
	mc := &ManageTemplateCmd{env: env}
	cmd := &cobra.Command{
		Use:   "manage-template",
		Short: "Generate a template from a workload or list workloads",
		Long: "Generate and save templates from an existing workload. " +
			"Also lists the workloads a template can be generated from.",
		RunE: mc.run,
	}

	cmd.Flags().StringVarP(&mc.workloadID, "workload-id", "w", "", "Workload id to read questions and answers from")
	cmd.Flags().StringVarP(&mc.outputFile, "output", "o", "", "File or s3:// location for the template (default stdout)")
	cmd.Flags().BoolVarP(&mc.saveWorkload, "save-workload", "s", false, "Embed the workload's current marks in the template")
	cmd.Flags().BoolVarP(&mc.listWorkloads, "list-workloads", "l", false, "List the workloads of the current account")
	cmd.Flags().StringVarP(&mc.customLens, "custom-lens", "c", "", "Generate the template of a configured custom lens (e.g. eks)")

	return cmd
}

func (mc *ManageTemplateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if !mc.listWorkloads && mc.workloadID == "" {
		return fmt.Errorf("--workload-id is required unless --list-workloads is set")
	}

	env, err := mc.env(ctx)
	if err != nil {
		return err
	}

	if mc.listWorkloads {
		workloads, err := env.workloadService().List(ctx)
		if err != nil {
			return err
		}
		return export.NewReporter(cmd.OutOrStdout()).HandleWorkloads(workloads)
	}

	req := template.GenerateRequest{
		WorkloadID:   mc.workloadID,
		LensAlias:    env.Settings.StandardLensAlias,
		LensLabel:    env.Settings.StandardLensLabel,
		IncludeMarks: mc.saveWorkload,
	}
	if mc.customLens != "" {
		label, err := env.Settings.CustomLensLabel(mc.customLens)
		if err != nil {
			return err
		}
		alias, err := env.lensService().AliasByName(ctx, label)
		if err != nil {
			return err
		}
		req.LensAlias, req.LensLabel = alias, label
	}

	b, err := template.NewGenerator(env.Gateway, env.Settings.AnswersPageSize).Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate template: %w", err)
	}

	if mc.outputFile == "" {
		_, err = cmd.OutOrStdout().Write(b.Bytes())
		return err
	}
	return env.Files.Write(ctx, mc.outputFile, b.Bytes())
}
