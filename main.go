package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nvr-ai/iconpad/images"
	"github.com/nvr-ai/iconpad/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultSource is the cropped icon produced by the icon generation script.
	DefaultSource = "build/icon_final_cropped.png"
	// DefaultDest is where the padded icon is written.
	DefaultDest = "build/icon_padded.png"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line tool and returns the process exit code.
//
// Arguments:
//   - args: Command line arguments without the program name.
//   - stdout: Destination of status and error lines.
//   - stderr: Destination of usage text and debug logs.
//
// Returns:
//   - int: 0 on success, 1 on a missing source or processing failure, 2 on bad flags.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("iconpad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: iconpad [flags] [source_path] [dest_path]\n\n")
		fmt.Fprintf(stderr, "Shrinks an icon and centers it on a transparent canvas of the original size.\n\n")
		fs.PrintDefaults()
	}

	var (
		scale   float64
		verbose bool
	)
	fs.Float64Var(&scale, "scale", images.DefaultScale, "Fraction the content is shrunk to")
	fs.BoolVar(&verbose, "v", false, "Write debug logs to stderr")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	source, dest := DefaultSource, DefaultDest
	if fs.NArg() > 0 {
		source = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		dest = fs.Arg(1)
	}

	logger := newLogger(verbose, stderr)
	defer logger.Sync() //nolint:errcheck

	if !util.Exists(source) {
		fmt.Fprintf(stdout, "Source file %s not found!\n", source)
		return 1
	}

	cfg := images.DefaultConfig()
	cfg.Scale = scale
	cfg.Logger = logger

	if _, err := images.PadFile(source, dest, cfg); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Created padded icon at %s (scale: %v)\n", dest, scale)
	return 0
}

// newLogger returns a development logger on w when verbose is set, otherwise a no-op logger.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
