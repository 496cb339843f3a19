// Package prompt assembles the final prompt text sent to a model.
package prompt

// Compose places clipboard text ahead of the user's prompt, separated by a
// blank line. When either part is empty the other is returned unchanged,
// with no stray separator.
func Compose(clipboardText, userPrompt string) string {
	switch {
	case clipboardText == "":
		return userPrompt
	case userPrompt == "":
		return clipboardText
	default:
		return clipboardText + "\n\n" + userPrompt
	}
}
