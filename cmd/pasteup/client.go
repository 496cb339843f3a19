package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"

	"go.klb.dev/pasteup/internal/attachment"
)

// sendPrompt sends the composed prompt and attachments to the configured
// chat-completion endpoint and streams the response to stdout.
func sendPrompt(ctx context.Context, v *viper.Viper, text string, attachments []attachment.Attachment) error {
	apiKey := v.GetString("api-key")
	if apiKey == "" {
		return errors.New("no API key: set --api-key or PASTEUP_API_KEY")
	}

	cfg := openai.DefaultConfig(apiKey)
	if base := v.GetString("base-url"); base != "" {
		cfg.BaseURL = base
	}
	client := openai.NewClientWithConfig(cfg)

	var parts []openai.ChatMessagePart
	if text != "" {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: text,
		})
	}
	for _, a := range attachments {
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: a.DataURL()},
		})
	}

	var messages []openai.ChatCompletionMessage
	if system := v.GetString("system"); system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	})

	model := v.GetString("model")
	slog.Debug("sending prompt", "model", model, "attachments", len(attachments), "chars", len(text))

	stream, err := client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("stream: %w", err)
		}
		if len(resp.Choices) > 0 {
			fmt.Print(resp.Choices[0].Delta.Content)
		}
	}
	fmt.Println()
	return nil
}
