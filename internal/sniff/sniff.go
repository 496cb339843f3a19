// Package sniff provides best-effort content-type detection for raw bytes.
package sniff

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Func is a byte sniffer: it returns a best-guess media type for data, or
// "" when it has no guess. Implementations must not modify data.
type Func func(data []byte) string

// Detect is the default sniffer, backed by the mimetype library. It returns
// the bare media type without parameters ("text/plain", not
// "text/plain; charset=utf-8"), or "" for empty input.
func Detect(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	label := mimetype.Detect(data).String()
	base, _, _ := strings.Cut(label, ";")
	return strings.TrimSpace(base)
}
