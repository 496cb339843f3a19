package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pasteup/internal/attachment"
	"go.klb.dev/pasteup/internal/clipread"
	"go.klb.dev/pasteup/internal/prompt"
	"go.klb.dev/pasteup/internal/sniff"
)

func newPromptCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "prompt [text]",
		Short: "Send a prompt, optionally with clipboard content",
		Long: `Sends a prompt to an OpenAI-compatible chat endpoint and prints the
response to stdout.

  pasteup prompt "describe this screenshot" --clipboard
  pasteup prompt "compare these" -a a.png -a b.png

With --clipboard, an image on the clipboard is attached to the request; text
is prepended to the prompt, separated by a blank line. An empty clipboard is
an error.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(v)
			return runPrompt(cmd, v, args)
		},
	}

	f := cmd.Flags()
	f.BoolP("clipboard", "C", false, "include clipboard content (image or text) in the prompt")
	f.StringArrayP("attach", "a", nil, "attach a file (repeatable)")
	f.StringP("model", "m", "gpt-4o-mini", "model name")
	f.String("base-url", "", "OpenAI-compatible API base URL (default: OpenAI)")
	f.String("api-key", "", "API key (or PASTEUP_API_KEY)")
	f.String("system", "", "system prompt")
	addConfigFlag(cmd)
	addLoggingFlags(cmd)

	return cmd
}

func runPrompt(cmd *cobra.Command, v *viper.Viper, args []string) error {
	userText := ""
	if len(args) == 1 {
		userText = args[0]
	}

	var attachments []attachment.Attachment
	for _, path := range v.GetStringSlice("attach") {
		a, err := attachment.FromPath(path, sniff.Detect)
		if err != nil {
			return err
		}
		attachments = append(attachments, a)
	}

	promptText := userText
	if v.GetBool("clipboard") {
		content, err := clipread.New().Resolve()
		if err != nil {
			return err
		}
		promptText, attachments = applyClipboard(content, userText, attachments)
	}

	if promptText == "" && len(attachments) == 0 {
		return errors.New("nothing to send: supply prompt text, --attach, or --clipboard")
	}

	return sendPrompt(cmd.Context(), v, promptText, attachments)
}

// applyClipboard folds resolved clipboard content into the request: an image
// joins the attachment set, text goes ahead of the user's prompt.
func applyClipboard(content clipread.Content, userText string, attachments []attachment.Attachment) (string, []attachment.Attachment) {
	switch content.Kind {
	case clipread.KindImage:
		return userText, append(attachments, attachment.FromContent(content.MediaType, content.Data))
	default:
		return prompt.Compose(content.Text, userText), attachments
	}
}
