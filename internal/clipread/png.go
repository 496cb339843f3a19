package clipread

import (
	"bytes"
	"image"
	"image/png"

	// Decoders for the formats a clipboard payload plausibly arrives in.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// toPNG normalizes raw image bytes to PNG, the canonical encoding. Bytes
// that are already PNG pass through untouched.
func toPNG(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
