package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/assetgen/pkg/errors"
)

// Shells lists the shells completion scripts can be generated for
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletion writes the completion script of rootCmd for shell to w
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s", shell)
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(assetgen completion bash)
  # To load completions for each session, execute once:
  $ assetgen completion bash > /etc/bash_completion.d/assetgen

Zsh:
  $ assetgen completion zsh > "${fpath[1]}/_assetgen"

Fish:
  $ assetgen completion fish | source
  # To load completions for each session, execute once:
  $ assetgen completion fish > ~/.config/fish/completions/assetgen.fish

PowerShell:
  PS> assetgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
