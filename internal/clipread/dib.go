package clipread

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"

	"golang.org/x/image/bmp"
)

var errShortDIB = errors.New("clipboard DIB shorter than BITMAPINFOHEADER")

// dibToPNG converts a CF_DIB clipboard payload to PNG. A DIB is a .bmp file
// minus its 14-byte BITMAPFILEHEADER, so one is synthesized: the pixel-data
// offset is the file header plus the info header plus any color palette.
func dibToPNG(dib []byte) ([]byte, error) {
	const fileHeaderLen = 14

	if len(dib) < 40 {
		return nil, errShortDIB
	}
	infoHeaderLen := binary.LittleEndian.Uint32(dib[0:4])
	bitCount := binary.LittleEndian.Uint16(dib[14:16])
	compression := binary.LittleEndian.Uint32(dib[16:20])

	var extra uint32
	if bitCount <= 8 {
		colors := binary.LittleEndian.Uint32(dib[32:36])
		if colors == 0 {
			colors = 1 << bitCount
		}
		extra = colors * 4
	} else if compression == 3 && infoHeaderLen == 40 {
		// BI_BITFIELDS carries three channel masks after the header.
		extra = 12
	}
	offset := fileHeaderLen + infoHeaderLen + extra

	var buf bytes.Buffer
	buf.Grow(fileHeaderLen + len(dib))
	buf.WriteString("BM")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(fileHeaderLen+len(dib)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0)) // reserved
	_ = binary.Write(&buf, binary.LittleEndian, offset)
	buf.Write(dib)

	img, err := bmp.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
