package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedImageFormat is returned for formats other than png and bmp.
var ErrUnsupportedImageFormat = errors.New("unsupported image format")

// Capture writes preview images to disk.
type Capture struct {
	outputDir string
	prefix    string
	format    string

	now func() time.Time
}

// NewCapture creates a capture writing <prefix>_<timestamp>.<format> files
// into outputDir. format is "png" or "bmp".
func NewCapture(outputDir, prefix, format string) (*Capture, error) {
	switch format {
	case "png", "bmp":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImageFormat, format)
	}
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}, nil
}

// Save writes img under a generated, timestamped name and returns the path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.GenerateFilename()
	if err := c.SaveTo(img, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveTo writes img to path in the capture's format.
func (c *Capture) SaveTo(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := c.encode(file, img); err != nil {
		return err
	}
	return file.Close()
}

func (c *Capture) encode(w io.Writer, img image.Image) error {
	switch c.format {
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	}
	return nil
}

// GenerateFilename generates a preview filename without saving.
func (c *Capture) GenerateFilename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", c.prefix, timestamp, c.format)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}
