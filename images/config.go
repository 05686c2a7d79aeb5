package images

import (
	"image/png"

	"go.uber.org/zap"
)

// DefaultScale is the fraction the content is shrunk to when nothing else is requested.
const DefaultScale = 0.85

// Config controls how an icon is padded.
type Config struct {
	// Scale is the fraction by which the content is shrunk before centering.
	// Values in (0, 1] pad; values above 1 enlarge and crop.
	Scale float64 `json:"scale"`

	// Filter selects the resampling backend.
	Filter ResampleFilter `json:"filter"`

	// Compression is the PNG compression level of the written canvas.
	Compression png.CompressionLevel `json:"compression"`

	// Logger receives debug events. A nil Logger discards them.
	Logger *zap.Logger `json:"-"`
}

// DefaultConfig returns the configuration used by the command line tool.
//
// Returns:
//   - Config: Lanczos resampling at DefaultScale with default PNG compression.
//
// @example
// cfg := DefaultConfig()
// cfg.Scale = 0.9
// err := PadFile("in.png", "out.png", cfg)
func DefaultConfig() Config {
	return Config{
		Scale:       DefaultScale,
		Filter:      LanczosFilter,
		Compression: png.DefaultCompression,
		Logger:      zap.NewNop(),
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
