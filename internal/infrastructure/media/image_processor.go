// Package media provides image processing for editor uploads.
package media

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

// maxUploadWidth bounds stored images; anything wider is downscaled before
// encoding.
const maxUploadWidth = 2000

// ImageProcessor converts editor uploads to WebP and writes them under the
// configured upload directory.
type ImageProcessor struct {
	uploadDir string
	baseURL   string
	quality   int
}

// NewImageProcessor creates a new ImageProcessor instance.
func NewImageProcessor(uploadDir, baseURL string, quality int) *ImageProcessor {
	return &ImageProcessor{
		uploadDir: uploadDir,
		baseURL:   baseURL,
		quality:   quality,
	}
}

// SaveUpload decodes an uploaded image, downscales oversized originals,
// re-encodes as WebP under a ULID filename, and returns the public URL.
func (p *ImageProcessor) SaveUpload(data []byte, originalFilename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload")
	}

	// SVG is text, not a raster format; store it as-is.
	if strings.EqualFold(filepath.Ext(originalFilename), ".svg") {
		return p.writeFile(security.GenerateULID()+".svg", data)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("unsupported image format: %w", err)
	}

	if img.Bounds().Dx() > maxUploadWidth {
		img = imaging.Resize(img, maxUploadWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(p.quality)}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	return p.writeFile(security.GenerateULID()+".webp", buf.Bytes())
}

func (p *ImageProcessor) writeFile(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(p.uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fullPath := filepath.Join(p.uploadDir, filename)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return strings.TrimRight(p.baseURL, "/") + "/" + filename, nil
}

// Delete removes a previously stored upload given its public URL. Unknown
// files are not an error.
func (p *ImageProcessor) Delete(url string) error {
	filename := filepath.Base(url)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid upload url")
	}
	if err := os.Remove(filepath.Join(p.uploadDir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}
