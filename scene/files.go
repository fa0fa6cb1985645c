package scene

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText reads a text file as UTF-8. A UTF-8 or UTF-16 byte order mark
// selects the decoding and is dropped.
func ReadText(filename string) (string, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("scene: %w", err)
	}
	defer fp.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(fp, dec))
	if err != nil {
		return "", fmt.Errorf("scene: read %s: %w", filename, err)
	}
	return string(data), nil
}

// ImageSize returns the dimensions stored in the header of an image file.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func ImageSize(filename string) (width, height int, err error) {
	fp, err := os.Open(filename)
	if err != nil {
		return 0, 0, fmt.Errorf("scene: %w", err)
	}
	defer fp.Close()

	cfg, _, err := image.DecodeConfig(bufio.NewReader(fp))
	if err != nil {
		return 0, 0, fmt.Errorf("scene: %s: %w", filename, err)
	}
	return cfg.Width, cfg.Height, nil
}
