package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedExtensions lists the image extensions chimg accepts as input.
var AllowedExtensions = []string{
	".jpg",
	".jpeg",
	".png",
	".gif",
	".bmp",
	".tiff",
	".webp",
}

// IsAllowedExtension checks the extension of path against AllowedExtensions,
// ignoring case.
func IsAllowedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// GenerateTempName returns a hidden sibling of path used while writing it.
// The original extension is kept last so encoders keyed on it still work.
func GenerateTempName(path string) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	name := strings.TrimSuffix(file, ext)
	id := uuid.New().String()[:8]

	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp%s", name, id, ext))
}
