package media

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// PreviewMaxWidth bounds the logo preview shown in the wizard
	PreviewMaxWidth = 200
	// PreviewMaxHeight bounds the logo preview shown in the wizard
	PreviewMaxHeight = 200
)

// GenerateLogoPreview creates a downscaled preview of an uploaded
// logo. Logos are scaled to fit inside the preview box with their
// aspect ratio preserved; they are never cropped, since cropped
// marks misrepresent the brand in the preview pane.
func GenerateLogoPreview(srcPath, dstPath string) error {
	return generateFitPreview(srcPath, dstPath, PreviewMaxWidth, PreviewMaxHeight)
}

func generateFitPreview(srcPath, dstPath string, maxWidth, maxHeight int) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer srcFile.Close()

	img, _, err := image.Decode(srcFile)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	srcBounds := img.Bounds()
	srcWidth := srcBounds.Dx()
	srcHeight := srcBounds.Dy()
	if srcWidth <= 0 || srcHeight <= 0 {
		return fmt.Errorf("image has no pixels")
	}

	scale := 1.0
	if widthScale := float64(maxWidth) / float64(srcWidth); widthScale < scale {
		scale = widthScale
	}
	if heightScale := float64(maxHeight) / float64(srcHeight); heightScale < scale {
		scale = heightScale
	}

	dstWidth := int(float64(srcWidth) * scale)
	dstHeight := int(float64(srcHeight) * scale)
	if dstWidth < 1 {
		dstWidth = 1
	}
	if dstHeight < 1 {
		dstHeight = 1
	}

	preview := image.NewNRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.CatmullRom.Scale(preview, preview.Bounds(), img, srcBounds, draw.Over, nil)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dstFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer dstFile.Close()

	// PNG keeps logo transparency intact
	if err := png.Encode(dstFile, preview); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}

	return nil
}
