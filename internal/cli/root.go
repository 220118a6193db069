package cli

import (
	"github.com/arthur-debert/branchswitch/internal/version"
	"github.com/arthur-debert/branchswitch/pkg/config"
	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/fingerprint"
	"github.com/arthur-debert/branchswitch/pkg/logging"
	"github.com/arthur-debert/branchswitch/pkg/pipeline"
	"github.com/arthur-debert/branchswitch/pkg/registry"
	"github.com/arthur-debert/branchswitch/pkg/runner"
	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/arthur-debert/branchswitch/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Deps are the collaborators the root command runs with. Zero fields fall
// back to the real filesystem and process runner.
type Deps struct {
	Runner runner.Runner
	Fs     afero.Fs
}

// globalFlags holds the persistent flag values shared by all commands
type globalFlags struct {
	verbosity  int
	configFile string
	format     string
	strict     bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command with explicit collaborators.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    branchArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, flags, deps, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "", MsgFlagFormat)
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, MsgFlagStrict)

	initTemplateFormatting(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newManifestsCmd(flags))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// branchArgs requires exactly one branch name. A missing branch prints the
// usage text before failing.
func branchArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		_ = cmd.Usage()
		return errors.New(errors.ErrUsage, MsgErrMissingBranch)
	case len(args) > 1:
		_ = cmd.Usage()
		return errors.Newf(errors.ErrUsage, MsgErrTooManyArgs, len(args))
	default:
		return nil
	}
}

// loadConfig layers the command-line flags on top of the configuration.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides["output.format"] = flags.format
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		overrides["output.strict"] = flags.strict
	}

	return config.Load(config.LoadOptions{
		ConfigFile: flags.configFile,
		Overrides:  overrides,
	})
}

// parseFormat turns the configured format into a ui.Format
func parseFormat(s string) (ui.Format, error) {
	format, err := ui.ParseFormat(s)
	if err != nil {
		return ui.FormatAuto, errors.Wrapf(err, errors.ErrUsage, MsgErrInvalidFormat, s)
	}
	return format, nil
}

func runSwitch(cmd *cobra.Command, flags *globalFlags, deps Deps, branch string) error {
	logger := logging.GetLogger("cli.switch")

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	format, err := parseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	reg, err := registry.FromConfig(cfg)
	if err != nil {
		return err
	}

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}
	progress, err := ui.NewProgressRenderer(format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}

	run := deps.Runner
	if run == nil {
		run = runner.New()
	}
	fp := fingerprint.NewOS()
	if deps.Fs != nil {
		fp = fingerprint.New(deps.Fs)
	}

	logger.Info().
		Str("branch", branch).
		Int("manifests", reg.Len()).
		Bool("strict", cfg.Output.Strict).
		Str("format", format.String()).
		Msg("Starting branch switch")

	p := pipeline.New(pipeline.Options{
		Registry:      reg,
		Fingerprinter: fp,
		Runner:        run,
		Switch:        types.NewCommand(cfg.Switch.Program, cfg.Switch.Args...),
		Progress:      progress,
	})

	report, err := p.Run(cmd.Context(), branch)
	if err != nil {
		return err
	}

	if err := renderer.RenderReport(report); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrRenderReport)
	}

	if cfg.Output.Strict && report.HasFailures() {
		return errors.Newf(errors.ErrManifestFailures, MsgErrStrictFailures, len(report.Failures())).
			WithDetail("branch", branch)
	}
	return nil
}
