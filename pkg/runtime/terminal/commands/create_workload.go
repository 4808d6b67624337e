package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/de-tools/wafr-cli/pkg/services/lens"
	"github.com/de-tools/wafr-cli/pkg/services/workload"
	"github.com/spf13/cobra"
)

type CreateWorkloadCmd struct {
	templateFile    string
	workloadName    string
	description     string
	environment     string
	accountIDs      []string
	regions         []string
	reviewOwner     string
	disableStandard bool
	trustedAdvisor  string
	env             EnvFactory
}

func NewCreateWorkloadCmd(env EnvFactory) *cobra.Command {
	cc := &CreateWorkloadCmd{env: env}
	cmd := &cobra.Command{
		Use:   "create-workload",
		Short: "Create a workload from a standard or custom lens template",
		RunE:  cc.run,
	}

	cmd.Flags().StringVarP(&cc.templateFile, "template-file", "t", "", "Template file or s3:// location to create the workload from")
	cmd.Flags().StringVarP(&cc.workloadName, "workload-name", "w", "", "Name of the new workload")
	cmd.Flags().StringVarP(&cc.description, "description", "d", "", "Description of the new workload")
	cmd.Flags().StringVarP(&cc.environment, "environment", "e", "", "Environment of the workload [prod, pre-prod]")
	cmd.Flags().StringSliceVarP(&cc.accountIDs, "account-ids", "a", []string{}, "AWS account ids the workload runs in")
	cmd.Flags().StringSliceVarP(&cc.regions, "regions", "r", []string{"eu-central-1"}, "Regions the workload runs in")
	cmd.Flags().StringVarP(&cc.reviewOwner, "review-owner", "o", "", "Owner of the review")
	cmd.Flags().BoolVar(&cc.disableStandard, "disable-standard", false, "Mark every standard lens question not applicable (ignored for the standard lens)")
	cmd.Flags().StringVar(&cc.trustedAdvisor, "trusted-advisor", "", "Trusted Advisor integration [enable, disable]")

	_ = cmd.MarkFlagRequired("template-file")
	_ = cmd.MarkFlagRequired("workload-name")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("environment")
	_ = cmd.MarkFlagRequired("review-owner")

	return cmd
}

func (cc *CreateWorkloadCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if cc.environment != "prod" && cc.environment != "pre-prod" {
		return fmt.Errorf("invalid environment %q, expected prod or pre-prod", cc.environment)
	}
	trustedAdvisor, err := domain.ParseTrustedAdvisor(cc.trustedAdvisor)
	if err != nil {
		return err
	}

	env, err := cc.env(ctx)
	if err != nil {
		return err
	}

	workloadID, err := env.workloadService().Create(ctx, workload.CreateRequest{
		TemplatePath:    cc.templateFile,
		Name:            cc.workloadName,
		Description:     cc.description,
		Environment:     domain.ParseEnvironment(cc.environment),
		AccountIDs:      cc.accountIDs,
		Regions:         cc.regions,
		ReviewOwner:     cc.reviewOwner,
		DisableStandard: cc.disableStandard,
		TrustedAdvisor:  trustedAdvisor,
	})
	if errors.Is(err, lens.ErrLensNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "No lens exist for this type of template. Please publish first the lens and then create the workload.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Workload %s updated with the marked question from the %s file\n", workloadID, cc.templateFile)
	return nil
}
