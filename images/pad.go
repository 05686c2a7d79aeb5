// Package images - Shrinks icon content and centers it on a transparent canvas
// of the original size.
//
// Pipeline Overview:
//
// ┌──────────────┐
// │ Source file  │
// └──────┬───────┘
// ┌────────────────────────────┐
// │ Decode, force RGBA         │
// └──────┬─────────────────────┘
// ┌────────────────────────────┐
// │ Resample to scale (Lanczos)│
// └──────┬─────────────────────┘
// ┌────────────────────────────┐
// │ Composite on blank canvas  │
// └──────┬─────────────────────┘
// ┌────────────────────────────┐
// │ Encode PNG                 │
// └────────────────────────────┘
package images

import (
	"image"
	"math"

	"github.com/nvr-ai/iconpad/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// MaxDimension bounds the resized content so that a large scale cannot
// exhaust memory.
const MaxDimension = 1 << 15

var (
	// ErrInvalidScale is returned for a scale that is not a positive finite number
	// or that makes the content larger than MaxDimension.
	ErrInvalidScale = errors.New("invalid scale factor")
	// ErrEmptyResult is returned when the scale shrinks a dimension to zero pixels.
	ErrEmptyResult = errors.New("scaled image has no pixels")
)

// ComputeLayout computes the size of the shrunken content and the offsets that
// center it on a width x height canvas.
//
// New dimensions are floor(dimension * scale). Offsets are the floor of half
// the difference, so odd differences leave the extra pixel on the right and
// bottom, and content larger than the canvas gets negative offsets.
//
// Arguments:
//   - width: The canvas width in pixels.
//   - height: The canvas height in pixels.
//   - scale: The fraction to shrink the content to.
//
// Returns:
//   - Layout: The content size and position.
//   - error: ErrInvalidScale or ErrEmptyResult when no valid layout exists.
//
// @example
// layout, _ := ComputeLayout(100, 100, 0.85)
// // layout.NewWidth == 85, layout.XOffset == 7
func ComputeLayout(width, height int, scale float64) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, errors.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return Layout{}, errors.Wrapf(ErrInvalidScale, "%v", scale)
	}

	w := math.Floor(float64(width) * scale)
	h := math.Floor(float64(height) * scale)
	if w > MaxDimension || h > MaxDimension {
		return Layout{}, errors.Wrapf(ErrInvalidScale, "%v produces %.0fx%.0f, limit is %d", scale, w, h, MaxDimension)
	}

	newWidth, newHeight := int(w), int(h)
	if newWidth <= 0 || newHeight <= 0 {
		return Layout{}, errors.Wrapf(ErrEmptyResult, "%dx%d at scale %v gives %dx%d",
			width, height, scale, newWidth, newHeight)
	}

	return Layout{
		Width:     width,
		Height:    height,
		NewWidth:  newWidth,
		NewHeight: newHeight,
		XOffset:   floorDiv(width-newWidth, 2),
		YOffset:   floorDiv(height-newHeight, 2),
	}, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Pad shrinks img by cfg.Scale and centers it on a transparent canvas of the
// original size. The resized content is blended by its own alpha channel, so
// source transparency is kept rather than flattened.
//
// Arguments:
//   - img: The source image.
//   - cfg: The scale, filter and logger to use.
//
// Returns:
//   - *image.NRGBA: The padded canvas, anchored at (0, 0).
//   - Layout: Where the content was placed.
//   - error: An error if the layout is invalid or the filter unknown.
func Pad(img image.Image, cfg Config) (*image.NRGBA, Layout, error) {
	if img == nil {
		return nil, Layout{}, errors.New("image is nil")
	}
	log := cfg.logger()

	bounds := img.Bounds()
	layout, err := ComputeLayout(bounds.Dx(), bounds.Dy(), cfg.Scale)
	if err != nil {
		return nil, Layout{}, err
	}

	log.Debug("computed layout",
		zap.Float64("scale", cfg.Scale),
		zap.Int("width", layout.Width),
		zap.Int("height", layout.Height),
		zap.Int("new_width", layout.NewWidth),
		zap.Int("new_height", layout.NewHeight),
		zap.Int("x_offset", layout.XOffset),
		zap.Int("y_offset", layout.YOffset),
	)

	src := toNRGBA(img)

	var content image.Image = src
	if layout.NewWidth != layout.Width || layout.NewHeight != layout.Height {
		content, err = Resize(src, layout.NewWidth, layout.NewHeight, cfg.Filter)
		if err != nil {
			return nil, Layout{}, err
		}
		log.Debug("resized content", zap.Stringer("filter", cfg.Filter))
	}

	canvas := image.NewNRGBA(layout.Canvas())
	Composite(canvas, content, image.Pt(layout.XOffset, layout.YOffset))

	return canvas, layout, nil
}

// Composite draws src onto dst with its top-left corner at at, weighting each
// pixel by the source alpha. Pixels outside dst are clipped.
func Composite(dst draw.Image, src image.Image, at image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// PadFile pads the image at inputPath and writes the canvas as PNG to outputPath.
//
// Arguments:
//   - inputPath: The source image, in any registered format.
//   - outputPath: The destination PNG path. Its directory must exist.
//   - cfg: The padding configuration.
//
// Returns:
//   - Layout: Where the content was placed.
//   - error: An error if any step fails. No file is written on failure.
//
// @example
// _, err := PadFile("build/icon.png", "build/icon_padded.png", DefaultConfig())
func PadFile(inputPath, outputPath string, cfg Config) (Layout, error) {
	log := cfg.logger()

	file, err := util.LoadImageFile(inputPath)
	if err != nil {
		return Layout{}, err
	}

	src, err := Decode(file.Data)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "cannot read %s", inputPath)
	}
	log.Debug("decoded source",
		zap.String("path", inputPath),
		zap.String("format", string(src.Format)),
		zap.Int("width", src.Width),
		zap.Int("height", src.Height),
	)

	canvas, layout, err := Pad(src.Pixels, cfg)
	if err != nil {
		return Layout{}, err
	}

	if err := SavePNG(outputPath, canvas, cfg.Compression); err != nil {
		return Layout{}, err
	}
	log.Debug("wrote padded icon", zap.String("path", outputPath))

	return layout, nil
}
