package images

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an image in any registered format and forces it into
// 8-bit straight-alpha RGBA. Sources without an alpha channel become opaque.
//
// Arguments:
//   - data: The raw bytes of the encoded image.
//
// Returns:
//   - *Image: The decoded image anchored at (0, 0).
//   - error: An error if the data is empty or cannot be decoded.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.New("image data is empty")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "image decoding failed")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("invalid image dimensions: %dx%d", cfg.Width, cfg.Height)
	}

	decoded, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "image decoding failed")
	}

	pixels := toNRGBA(decoded)

	return &Image{
		Format: ImageFormat(format),
		Pixels: pixels,
		Width:  pixels.Rect.Dx(),
		Height: pixels.Rect.Dy(),
	}, nil
}

// EncodePNG writes img to w as a PNG with a full alpha channel.
func EncodePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	if err := imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		return errors.Wrap(err, "png encoding failed")
	}
	return nil
}

// SavePNG encodes img as PNG to path.
//
// The image is written to a temporary file in the destination directory and
// renamed into place, so a failed encode never leaves a truncated file at path.
//
// Arguments:
//   - path: The destination file path. Its directory must exist.
//   - img: The image to encode.
//   - level: The PNG compression level.
//
// Returns:
//   - error: An error if the file cannot be created, encoded, or renamed.
func SavePNG(path string, img image.Image, level png.CompressionLevel) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create output in %s", dir)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodePNG(tmp, img, level); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrap(err, "failed to set output permissions")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

// toNRGBA returns img as 8-bit straight-alpha RGBA anchored at (0, 0),
// copying only when img is not already in that form.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
