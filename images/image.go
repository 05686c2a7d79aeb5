// Package images - Image definitions for the icon padding pipeline.
package images

import "image"

// Image represents a decoded source image together with the format it was read from.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The pixels of the image, always 8-bit straight-alpha RGBA anchored at (0, 0).
	Pixels *image.NRGBA `json:"-" yaml:"-"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// Layout describes where the shrunken content lands on the canvas.
type Layout struct {
	// Width and Height are the canvas dimensions, equal to the source dimensions.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	// NewWidth and NewHeight are the dimensions of the resized content.
	NewWidth  int `json:"new_width" yaml:"new_width"`
	NewHeight int `json:"new_height" yaml:"new_height"`
	// XOffset and YOffset locate the top-left corner of the content.
	// They are negative when the content is larger than the canvas.
	XOffset int `json:"x_offset" yaml:"x_offset"`
	YOffset int `json:"y_offset" yaml:"y_offset"`
}

// Content returns the rectangle covered by the resized content, in canvas coordinates.
// The rectangle is not clipped to the canvas.
func (l Layout) Content() image.Rectangle {
	return image.Rect(l.XOffset, l.YOffset, l.XOffset+l.NewWidth, l.YOffset+l.NewHeight)
}

// Canvas returns the bounds of the output canvas.
func (l Layout) Canvas() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}
