// Package clipread resolves the current system clipboard into a single typed
// value: a PNG image or a plain-text string.
//
// Retrieval runs through an ordered chain of platform mechanisms — a generic
// clipboard library first, then native APIs or the usual CLI utilities
// (pbpaste, xclip, xsel) — stopping at the first one that works. Images take
// strict priority over text: when an image is present the text mechanisms
// are never consulted. Environmental gaps (a missing utility, a broken
// library) never surface as errors; they fall through to the next mechanism,
// and only a clipboard with nothing usable at all yields a ClipboardError.
package clipread

import (
	"go.klb.dev/pasteup/internal/sniff"
)

// PNGMediaType is the canonical encoding every clipboard image is
// normalized to before it leaves this package.
const PNGMediaType = "image/png"

// Kind tags which variant a Content value holds.
type Kind int

const (
	KindImage Kind = iota
	KindText
)

// Content is the resolver's sole success type.
// Exactly one variant is populated, per Kind.
type Content struct {
	Kind Kind

	// KindImage: PNG bytes and their sniffed media type label.
	Data      []byte
	MediaType string

	// KindText: the clipboard text.
	Text string
}

// ClipboardError is the only failure Resolve returns: both the image and
// text chains came up empty.
type ClipboardError struct {
	msg string
}

func (e *ClipboardError) Error() string { return e.msg }

func errClipboardEmpty() *ClipboardError {
	return &ClipboardError{
		msg: "Clipboard is empty or contains unsupported content. " +
			"Supported content types: images (PNG, JPEG, etc.) and text.",
	}
}

// Resolver resolves the clipboard for the current platform. Each Resolve
// call is independent; the Resolver holds no state between calls.
type Resolver struct {
	sniff sniff.Func

	// Chain entry points, swappable in tests.
	fetchImage func() []byte
	fetchText  func() string
}

// New returns a Resolver using the platform backend chains and the default
// byte sniffer.
func New() *Resolver {
	return &Resolver{
		sniff:      sniff.Detect,
		fetchImage: getClipboardImage,
		fetchText:  getClipboardText,
	}
}

// Resolve returns whatever is on the clipboard right now. An image wins over
// text; text is only consulted when no image is available. When neither
// chain produces content it returns a *ClipboardError.
func (r *Resolver) Resolve() (Content, error) {
	if data := r.fetchImage(); len(data) > 0 {
		mediaType := ""
		if r.sniff != nil {
			mediaType = r.sniff(data)
		}
		if mediaType == "" {
			mediaType = PNGMediaType
		}
		return Content{Kind: KindImage, Data: data, MediaType: mediaType}, nil
	}

	if text := r.fetchText(); text != "" {
		return Content{Kind: KindText, Text: text}, nil
	}

	return Content{}, errClipboardEmpty()
}

// getClipboardImage runs the image chain for the current platform.
// A nil result means no image is available; it never fails.
func getClipboardImage() []byte {
	return runImageChain(imageChainFor(currentPlatform()))
}

// getClipboardText runs the text chain for the current platform.
// An empty result means no text is available; it never fails.
func getClipboardText() string {
	return runTextChain(textChainFor(currentPlatform()))
}
