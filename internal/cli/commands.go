package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/branchswitch/internal/version"
	"github.com/arthur-debert/branchswitch/pkg/config"
	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/registry"
	"github.com/arthur-debert/branchswitch/pkg/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			content, err := config.GenerateTOML(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newManifestsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "manifests",
		Short: MsgManifestsShort,
		Long:  MsgManifestsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			reg, err := registry.FromConfig(cfg)
			if err != nil {
				return err
			}

			format, err := parseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
			}
			return renderer.RenderDefinitions(reg.Definitions())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(branchswitch completion bash)

Zsh:
  $ branchswitch completion zsh > "${fpath[1]}/_branchswitch"

Fish:
  $ branchswitch completion fish | source

PowerShell:
  PS> branchswitch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man <dir>",
		Short:  MsgManShort,
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to create %s", dir)
			}

			header := &doc.GenManHeader{
				Title:   "BRANCHSWITCH",
				Section: "1",
				Source:  "branchswitch " + version.Version,
				Manual:  "branchswitch manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrIO, "failed to generate man pages")
			}

			_, err := fmt.Fprintf(cmd.ErrOrStderr(), MsgManWritten+"\n", dir)
			return err
		},
	}
}
