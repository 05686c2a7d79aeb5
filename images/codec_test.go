package images

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func getPNGBytes(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 8, 6))
	for i := range gray.Pix {
		gray.Pix[i] = 0x80
	}

	var bmpBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, getPatternImage(8, 6)))

	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, getTestImage(8, 6, red), nil))

	tests := []struct {
		name   string
		data   []byte
		format ImageFormat
		alpha  uint8
	}{
		{name: "PNG with alpha", data: getPNGBytes(t, getTestImage(8, 6, color.NRGBA{B: 255, A: 128})), format: FormatPNG, alpha: 128},
		{name: "grayscale PNG becomes opaque RGBA", data: getPNGBytes(t, gray), format: FormatPNG, alpha: 255},
		{name: "BMP", data: bmpBuf.Bytes(), format: FormatBMP, alpha: 255},
		{name: "GIF", data: gifBuf.Bytes(), format: FormatGIF, alpha: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data)
			require.NoError(t, err)

			assert.Equal(t, tt.format, img.Format)
			assert.Equal(t, 8, img.Width)
			assert.Equal(t, 6, img.Height)
			assert.Equal(t, image.Rect(0, 0, 8, 6), img.Pixels.Rect)
			assert.Equal(t, tt.alpha, img.Pixels.NRGBAAt(3, 3).A)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.Error(t, err)

	_, err = Decode([]byte("not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), image.ErrFormat.Error())

	data := getPNGBytes(t, getTestImage(16, 16, red))
	_, err = Decode(data[:len(data)/2])
	assert.Error(t, err, "truncated PNG should fail to decode")
}

func TestEncodePNG(t *testing.T) {
	src := getTestImage(5, 7, color.NRGBA{G: 200, A: 60})

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, src, png.BestCompression))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 7), decoded.Bounds())
	assert.Equal(t, color.NRGBA{G: 200, A: 60}, color.NRGBAModel.Convert(decoded.At(2, 2)))
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, SavePNG(path, getTestImage(3, 3, red), png.DefaultCompression))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestSavePNGMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.png")

	err := SavePNG(path, getTestImage(3, 3, red), png.DefaultCompression)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
