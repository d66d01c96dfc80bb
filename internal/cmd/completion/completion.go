// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported shell and how to install its script.
type shell struct {
	name    string
	install string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `To load completions in your current shell session:

  source <(ucv completion bash)

To load completions for every new session:

  # Linux
  ucv completion bash > /etc/bash_completion.d/ucv

  # macOS (requires bash-completion)
  ucv completion bash > $(brew --prefix)/etc/bash_completion.d/ucv`,
		example: `  # Load in current session
  source <(ucv completion bash)

  # Install permanently (Linux)
  ucv completion bash | sudo tee /etc/bash_completion.d/ucv > /dev/null`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name: "zsh",
		install: `Ensure completion is enabled in ~/.zshrc:

  autoload -Uz compinit && compinit

Then add the completion script to your fpath:

  ucv completion zsh > "${fpath[1]}/_ucv"`,
		example: `  # Load in current session
  source <(ucv completion zsh)

  # Install permanently
  mkdir -p ~/.zsh/completions
  ucv completion zsh > ~/.zsh/completions/_ucv`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `To load completions for every new session:

  ucv completion fish > ~/.config/fish/completions/ucv.fish`,
		example: `  # Load in current session
  ucv completion fish | source`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `To load completions for every new session, add the output to your profile:

  ucv completion powershell >> $PROFILE`,
		example: `  # Load in current session
  ucv completion powershell | Out-String | Invoke-Expression`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ucv.

These scripts enable tab-completion for commands, flags, and file arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newShellCmd(sh))
	}

	return cmd
}

func newShellCmd(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:                   sh.name,
		Short:                 "Generate " + sh.name + " completion script",
		Long:                  "Generate " + sh.name + " completion script for ucv.\n\n" + sh.install,
		Example:               sh.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
