package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/wafr-cli/pkg/runtime/terminal/commands"
	"github.com/de-tools/wafr-cli/pkg/services/config"
	"github.com/de-tools/wafr-cli/pkg/services/prompt"
	"github.com/de-tools/wafr-cli/pkg/store/templatefile"
	"github.com/de-tools/wafr-cli/pkg/store/wellarchitected"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	opts     Options
	settings *config.Settings
	rootCmd  *cobra.Command

	configFile string
	profile    string
	region     string
	logLevel   string
}

// Options contain configuration for the CLI
type Options struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	// Env replaces the AWS backed environment, mainly for tests.
	Env commands.EnvFactory
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:], used by tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "wafr",
		Short:             "Manage AWS Well-Architected reviews through text templates",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetIn(cli.opts.Input)
	cmd.SetOut(cli.opts.Output)
	cmd.SetErr(cli.opts.ErrOutput)

	cmd.PersistentFlags().StringVar(&cli.configFile, "config", "", "Settings file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&cli.profile, "profile", "", "AWS shared config profile")
	cmd.PersistentFlags().StringVar(&cli.region, "region", "", "AWS region (overrides settings)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level [debug, info, warn, error]")

	env := cli.opts.Env
	if env == nil {
		env = cli.awsEnv
	}

	cmd.AddCommand(commands.NewManageTemplateCmd(env))
	cmd.AddCommand(commands.NewCreateWorkloadCmd(env))
	cmd.AddCommand(commands.NewUpdateWorkloadCmd(env))
	cmd.AddCommand(commands.NewPublishLensCmd(env))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}

// setup loads settings, applies flag overrides and attaches the logger to the
// context of the command being run.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		settings.Profile = cli.profile
	}
	if flags.Changed("region") {
		settings.Region = cli.region
	}
	if flags.Changed("log-level") {
		settings.LogLevel = cli.logLevel
	}
	cli.settings = settings

	logger, err := NewLogger(cli.opts.ErrOutput, settings.LogLevel)
	if err != nil {
		return err
	}
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func (cli *CLI) awsEnv(ctx context.Context) (*commands.Env, error) {
	awsCfg, err := config.LoadAWSConfig(ctx, cli.settings.Profile, cli.settings.Region)
	if err != nil {
		return nil, err
	}

	return &commands.Env{
		Settings: cli.settings,
		Gateway:  wellarchitected.NewFromConfig(*awsCfg),
		Files:    templatefile.NewFromConfig(*awsCfg),
		Confirm:  prompt.Console(cli.opts.Input, cli.opts.ErrOutput),
	}, nil
}

// Settings returns the settings resolved for the last run, nil before one.
func (cli *CLI) Settings() *config.Settings {
	return cli.settings
}
