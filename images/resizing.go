package images

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// ResampleFilter selects the algorithm and library used to scale the icon content.
type ResampleFilter int

const (
	// LanczosFilter uses nfnt/resize Lanczos3 (default, best quality).
	LanczosFilter ResampleFilter = iota
	// ImagingLanczosFilter uses the Lanczos filter of disintegration/imaging.
	ImagingLanczosFilter
	// CatmullRomFilter uses the bicubic Catmull-Rom kernel of x/image/draw.
	CatmullRomFilter
	// BilinearFilter uses the approximate bilinear kernel of x/image/draw (fastest).
	BilinearFilter
)

// ErrUnknownFilter is returned when a ResampleFilter has no backend.
var ErrUnknownFilter = errors.New("unknown resample filter")

// String returns the name of the filter.
func (f ResampleFilter) String() string {
	switch f {
	case LanczosFilter:
		return "lanczos"
	case ImagingLanczosFilter:
		return "imaging-lanczos"
	case CatmullRomFilter:
		return "catmull-rom"
	case BilinearFilter:
		return "bilinear"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// Resampler scales an image to an exact size.
type Resampler interface {
	// Resize returns a new image of exactly width x height pixels anchored at (0, 0).
	Resize(img image.Image, width, height int) image.Image
}

// ResamplerFunc adapts a plain function to the Resampler interface.
type ResamplerFunc func(img image.Image, width, height int) image.Image

// Resize calls f(img, width, height).
func (f ResamplerFunc) Resize(img image.Image, width, height int) image.Image {
	return f(img, width, height)
}

// NewResampler returns the backend for a filter.
//
// Arguments:
//   - filter: The resampling filter to use.
//
// Returns:
//   - Resampler: The backend implementing the filter.
//   - error: ErrUnknownFilter if the filter is not supported.
func NewResampler(filter ResampleFilter) (Resampler, error) {
	switch filter {
	case LanczosFilter:
		return ResamplerFunc(resizeLanczos3), nil
	case ImagingLanczosFilter:
		return ResamplerFunc(resizeImaging), nil
	case CatmullRomFilter:
		return scaler{draw.CatmullRom}, nil
	case BilinearFilter:
		return scaler{draw.ApproxBiLinear}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFilter, "%s", filter)
	}
}

// Resize scales img to width x height with the given filter.
// Invalid dimensions or an unknown filter return an error instead of an image.
func Resize(img image.Image, width, height int, filter ResampleFilter) (image.Image, error) {
	if img == nil {
		return nil, errors.New("image is nil")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: width=%d, height=%d", width, height)
	}

	r, err := NewResampler(filter)
	if err != nil {
		return nil, err
	}

	return r.Resize(img, width, height), nil
}

func resizeLanczos3(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

func resizeImaging(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// scaler resamples with one of the x/image/draw interpolators.
type scaler struct {
	draw.Scaler
}

func (s scaler) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
