package clipread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyPNG is a small but complete PNG file (166x282, paletted).
var tinyPNG = []byte(
	"\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\xa6\x00\x00\x01\x1a" +
		"\x02\x03\x00\x00\x00\xe6\x99\xc4^\x00\x00\x00\tPLTE\xff\xff\xff" +
		"\x00\xff\x00\xfe\x01\x00\x12t\x01J\x00\x00\x00GIDATx\xda\xed\xd81\x11" +
		"\x000\x08\xc0\xc0.]\xea\xaf&Q\x89\x04V\xe0>\xf3+\xc8\x91Z\xf4\xa2\x08EQ\x14E" +
		"Q\x14EQ\x14EQ\xd4B\x91$I3\xbb\xbf\x08EQ\x14EQ\x14EQ\x14E\xd1\xa5" +
		"\xd4\x17\x91\xc6\x95\x05\x15\x0f\x9f\xc5\t\x9f\xa4\x00\x00\x00\x00IEND\xaeB`" +
		"\x82")

// fakeBackends builds a Resolver with canned chain results and call counters.
type fakeBackends struct {
	imageData  []byte
	text       string
	imageCalls int
	textCalls  int
}

func (f *fakeBackends) resolver(sniffer func([]byte) string) *Resolver {
	return &Resolver{
		sniff: sniffer,
		fetchImage: func() []byte {
			f.imageCalls++
			return f.imageData
		},
		fetchText: func() string {
			f.textCalls++
			return f.text
		},
	}
}

func TestResolveImage(t *testing.T) {
	f := &fakeBackends{imageData: tinyPNG}
	r := f.resolver(func([]byte) string { return "image/png" })

	content, err := r.Resolve()

	require.NoError(t, err)
	assert.Equal(t, KindImage, content.Kind, "image bytes should resolve to the image variant")
	assert.Equal(t, tinyPNG, content.Data, "resolver must return the chain's bytes untouched")
	assert.Equal(t, "image/png", content.MediaType)
	assert.Empty(t, content.Text)
}

func TestResolveTextFallback(t *testing.T) {
	f := &fakeBackends{text: "Hello from clipboard"}
	r := f.resolver(nil)

	content, err := r.Resolve()

	require.NoError(t, err)
	assert.Equal(t, KindText, content.Kind)
	assert.Equal(t, "Hello from clipboard", content.Text, "text must come through verbatim")
	assert.Empty(t, content.Data)
	assert.Equal(t, 1, f.imageCalls, "image chain runs first")
	assert.Equal(t, 1, f.textCalls)
}

func TestResolveEmptyClipboard(t *testing.T) {
	f := &fakeBackends{}
	r := f.resolver(nil)

	_, err := r.Resolve()

	require.Error(t, err)
	var clipErr *ClipboardError
	require.ErrorAs(t, err, &clipErr, "the only caller-visible failure is ClipboardError")
	assert.Contains(t, err.Error(), "empty")
	assert.Contains(t, err.Error(), "images", "message should name the supported categories")
	assert.Contains(t, err.Error(), "text")
}

func TestResolveImagePriority(t *testing.T) {
	f := &fakeBackends{imageData: tinyPNG, text: "Some text"}
	r := f.resolver(func([]byte) string { return "image/png" })

	content, err := r.Resolve()

	require.NoError(t, err)
	assert.Equal(t, KindImage, content.Kind, "image strictly dominates text")
	assert.Equal(t, 0, f.textCalls, "the text chain must not be consulted when an image is present")
}

func TestResolveSnifferAbsentDefaultsToPNG(t *testing.T) {
	f := &fakeBackends{imageData: tinyPNG}
	r := f.resolver(func([]byte) string { return "" })

	content, err := r.Resolve()

	require.NoError(t, err)
	assert.Equal(t, PNGMediaType, content.MediaType, "an undecided sniffer falls back to the canonical PNG label")
}

func TestResolveNilSnifferDefaultsToPNG(t *testing.T) {
	f := &fakeBackends{imageData: tinyPNG}
	r := f.resolver(nil)

	content, err := r.Resolve()

	require.NoError(t, err)
	assert.Equal(t, PNGMediaType, content.MediaType)
}

func TestResolveSniffsImageBytesExactlyOnce(t *testing.T) {
	f := &fakeBackends{imageData: tinyPNG}
	var sniffed [][]byte
	r := f.resolver(func(data []byte) string {
		sniffed = append(sniffed, data)
		return "image/png"
	})

	_, err := r.Resolve()

	require.NoError(t, err)
	require.Len(t, sniffed, 1, "sniffer is called once, only on image bytes")
	assert.Equal(t, tinyPNG, sniffed[0])
}

func TestResolveIdempotent(t *testing.T) {
	f := &fakeBackends{imageData: tinyPNG}
	r := f.resolver(func([]byte) string { return "image/png" })

	first, err1 := r.Resolve()
	second, err2 := r.Resolve()

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "two calls with identical backends must produce identical results")
}

func TestNewWiresDefaults(t *testing.T) {
	r := New()

	assert.NotNil(t, r.sniff, "default sniffer must be wired")
	assert.NotNil(t, r.fetchImage)
	assert.NotNil(t, r.fetchText)
}
