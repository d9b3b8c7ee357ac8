// Package debug provides debug visualization and frame capture utilities.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// ImageFormat is the file format frames are written in.
type ImageFormat string

// Supported image formats.
const (
	PNG ImageFormat = "png"
	BMP ImageFormat = "bmp"
)

// ParseImageFormat maps a config name to an image format.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch f := ImageFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, BMP:
		return f, nil
	default:
		return "", fmt.Errorf("unknown image format %q (want png or bmp)", s)
	}
}

// ScreenshotCapture writes rendered frames to image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    ImageFormat
}

// NewScreenshotCapture creates a capture handler writing prefix-named
// files into outputDir.
func NewScreenshotCapture(outputDir, prefix string, format ImageFormat) *ScreenshotCapture {
	if format == "" {
		format = PNG
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// CaptureFrame writes img as the numbered frame n, e.g. frame_0007.png.
func (sc *ScreenshotCapture) CaptureFrame(img image.Image, n int) (string, error) {
	return sc.write(img, fmt.Sprintf("%s_%04d", sc.prefix, n))
}

// CaptureFromImage writes img under a timestamped name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	return sc.write(img, sc.timestamped())
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	return sc.path(sc.timestamped())
}

func (sc *ScreenshotCapture) timestamped() string {
	return fmt.Sprintf("%s_%s", sc.prefix, time.Now().Format("2006-01-02_15-04-05.000"))
}

func (sc *ScreenshotCapture) path(base string) string {
	filename := base + "." + string(sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

func (sc *ScreenshotCapture) write(img image.Image, base string) (string, error) {
	// Create output directory if needed
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.path(base)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	switch sc.format {
	case BMP:
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		err = fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	if cerr := file.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing file: %w", cerr)
	}
	if err != nil {
		os.Remove(filename)
		return "", err
	}
	return filename, nil
}
