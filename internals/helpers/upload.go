package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const profileImageMaxDim = 512

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// SaveProfileImage decodes the uploaded picture, downscales it to fit
// 512x512, and writes it under uploadDir. Returns the path relative to the
// static root, which is what gets recorded on the resident row.
func SaveProfileImage(uploadDir string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, profileImageMaxDim, profileImageMaxDim, imaging.Lanczos)

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename)
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		filename += ".jpg"
	}
	fullPath := filepath.Join(uploadDir, filename)

	if err := imaging.Save(img, fullPath); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return filepath.ToSlash(filepath.Join("uploads", filename)), nil
}
