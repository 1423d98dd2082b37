package processor

import (
	"fmt"
	"path/filepath"

	"github.com/phambaophuc/chimg/pkg/utils"
)

// UnsupportedExtensionError reports an input whose extension is not in
// utils.AllowedExtensions.
type UnsupportedExtensionError struct {
	Ext string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("unsupported file extension %q", e.Ext)
}

// ValidateExtension checks path against the input allow-list without
// touching the file.
func (p *ImageProcessor) ValidateExtension(path string) error {
	if !utils.IsAllowedExtension(path) {
		return &UnsupportedExtensionError{Ext: filepath.Ext(path)}
	}
	return nil
}
