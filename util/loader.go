package util

import (
	"os"

	"github.com/pkg/errors"
)

// ErrSourceNotFound is returned when a source image path does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
}

// Exists reports whether anything exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadImageFile reads the raw bytes of an image file.
//
// Arguments:
// - path: Path to the image file.
//
// Returns:
// - ImageFile: The path and contents of the file.
// - error: ErrSourceNotFound if nothing exists at path, or the read error.
func LoadImageFile(path string) (ImageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ImageFile{}, errors.Wrap(ErrSourceNotFound, path)
		}
		return ImageFile{}, errors.Wrapf(err, "failed to read %s", path)
	}

	return ImageFile{
		Path: path,
		Data: data,
	}, nil
}
