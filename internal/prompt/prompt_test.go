package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeClipboardComesFirst(t *testing.T) {
	got := Compose("Clipboard content here", "User question")

	assert.Equal(t, "Clipboard content here\n\nUser question", got)
	assert.Less(t,
		strings.Index(got, "Clipboard content here"),
		strings.Index(got, "User question"),
		"clipboard text must precede the user's question")
}

func TestComposeClipboardOnly(t *testing.T) {
	got := Compose("Just clipboard text", "")

	assert.Equal(t, "Just clipboard text", got, "no separator when there is no user prompt")
}

func TestComposeUserPromptOnly(t *testing.T) {
	got := Compose("", "User question")

	assert.Equal(t, "User question", got)
}

func TestComposeBothEmpty(t *testing.T) {
	assert.Empty(t, Compose("", ""))
}
