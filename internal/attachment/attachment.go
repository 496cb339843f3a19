// Package attachment models binary prompt attachments.
//
// An Attachment is one piece of non-text prompt input — today always an
// image — with the media type it was sniffed as and where it came from.
// Content is base64-encoded in JSON so binary data is safe to embed.
package attachment

import (
	"encoding/base64"
	"fmt"
	"os"

	"go.klb.dev/pasteup/internal/sniff"
)

// FallbackType is used when a sniffer has no guess for an attachment's bytes.
const FallbackType = "application/octet-stream"

// Attachment is a single binary prompt input.
type Attachment struct {
	// Type is the media type label, e.g. "image/png".
	Type string `json:"type"`
	// Path is the source file, if the attachment was read from disk.
	Path string `json:"path,omitempty"`
	// URL is the source URL, if the attachment was fetched.
	URL string `json:"url,omitempty"`
	// Content is the raw bytes. encoding/json base64-encodes it.
	Content []byte `json:"content,omitempty"`
}

// FromContent wraps in-memory bytes (e.g. a clipboard image) as an
// attachment. Path and URL stay empty.
func FromContent(mediaType string, content []byte) Attachment {
	return Attachment{Type: mediaType, Content: content}
}

// FromPath reads the file at path and sniffs its media type with sniffer,
// falling back to FallbackType when the sniffer has no guess.
func FromPath(path string, sniffer sniff.Func) (Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("attachment %s: %w", path, err)
	}
	mediaType := ""
	if sniffer != nil {
		mediaType = sniffer(data)
	}
	if mediaType == "" {
		mediaType = FallbackType
	}
	return Attachment{Type: mediaType, Path: path, Content: data}, nil
}

// DataURL returns the attachment as a base64 data: URL, the inline form
// OpenAI-compatible endpoints accept for images.
func (a Attachment) DataURL() string {
	return "data:" + a.Type + ";base64," + base64.StdEncoding.EncodeToString(a.Content)
}
