package clipread

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func TestToPNGPassesThroughPNG(t *testing.T) {
	got, err := toPNG(tinyPNG)

	require.NoError(t, err)
	assert.Equal(t, tinyPNG, got, "bytes already in the canonical encoding are not re-encoded")
}

func TestToPNGReencodesBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage(3, 2)))

	got, err := toPNG(buf.Bytes())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, pngMagic), "output must carry the PNG signature")

	decoded, err := png.Decode(bytes.NewReader(got))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), decoded.Bounds())
}

func TestToPNGRejectsGarbage(t *testing.T) {
	_, err := toPNG([]byte("definitely not an image"))

	assert.Error(t, err)
}

func TestDIBToPNGRoundTrip(t *testing.T) {
	// A DIB is a BMP stream minus the 14-byte file header.
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage(2, 2)))
	dib := buf.Bytes()[14:]

	got, err := dibToPNG(dib)

	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(got))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), decoded.Bounds())
}

func TestDIBToPNGShortInput(t *testing.T) {
	_, err := dibToPNG([]byte{1, 2, 3})

	assert.ErrorIs(t, err, errShortDIB)
}

func TestDIBToPNGUndecodable(t *testing.T) {
	dib := make([]byte, 64)
	dib[0] = 40 // plausible header size, nothing else valid

	_, err := dibToPNG(dib)

	assert.Error(t, err)
}
