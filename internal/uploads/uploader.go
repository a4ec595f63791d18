package uploads

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// IsImageUpload reports whether the upload's declared media type is an
// image. The palette pipeline must never be fed a file that does not
// declare an image/* type; the check happens before any decode.
func IsImageUpload(file *multipart.FileHeader) bool {
	contentType := file.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "image/")
}

// SaveLogo saves an uploaded logo under the draft's uploads directory
// and returns the stored file path
func SaveLogo(file *multipart.FileHeader, draftDir string) (string, error) {
	// Create uploads directory if it doesn't exist
	uploadsDir := filepath.Join(draftDir, "uploads")
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	// Generate random filename to avoid conflicts
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random filename: %w", err)
	}
	randomName := hex.EncodeToString(randomBytes)

	// Get file extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".png" // default
	}

	// Create full path
	filename := randomName + ext
	fullPath := filepath.Join(uploadsDir, filename)

	// Open uploaded file
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file contents
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	return fullPath, nil
}
