// pasteup: turn the system clipboard into model prompt input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "pasteup",
		Short: "Send prompts with clipboard images and text",
		Long: `pasteup resolves whatever is on the system clipboard — an image or plain
text — and feeds it into a model prompt.

"pasteup prompt" sends a prompt to an OpenAI-compatible endpoint. Pass
--clipboard/-C to include the clipboard: an image becomes an attachment,
text is prepended to the prompt. "pasteup show" just prints what the
clipboard resolves to.

Config file search order (first found wins):
  /etc/pasteup/pasteup.toml
  $HOME/.config/pasteup/pasteup.toml
  path supplied via --config

All flags can be set via PASTEUP_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newPromptCmd(),
		newShowCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pasteup %s\n", Version)
		},
	}
}
