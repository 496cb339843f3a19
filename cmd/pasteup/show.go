package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pasteup/internal/clipread"
	"go.klb.dev/pasteup/internal/logging"
)

func newShowCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print what the clipboard resolves to",
		Long: `Resolves the clipboard and writes the result to stdout: text as-is, image
bytes raw. Image bytes are only written when stdout is not a terminal or
--out is given. An empty clipboard is an error.

  pasteup show --out screenshot.png
  pasteup show > screenshot.png`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(v)
			return runShow(v)
		},
	}

	f := cmd.Flags()
	f.StringP("out", "o", "", "write image bytes to this file instead of stdout")
	addConfigFlag(cmd)
	addLoggingFlags(cmd)

	return cmd
}

func runShow(v *viper.Viper) error {
	content, err := clipread.New().Resolve()
	if err != nil {
		return err
	}

	if content.Kind == clipread.KindText {
		fmt.Print(content.Text)
		if !strings.HasSuffix(content.Text, "\n") {
			fmt.Println()
		}
		return nil
	}

	if out := v.GetString("out"); out != "" {
		return os.WriteFile(out, content.Data, 0o644)
	}
	if logging.IsTTY(os.Stdout) {
		fmt.Printf("%s, %d bytes (redirect stdout or pass --out to save)\n",
			content.MediaType, len(content.Data))
		return nil
	}
	_, err = os.Stdout.Write(content.Data)
	return err
}
