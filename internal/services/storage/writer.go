package storage

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/pkg/utils"
)

// write encodes img into a sibling temp file and renames it over path, so a
// failed encode never leaves a truncated destination behind.
func (s *StorageService) write(img image.Image, path string) error {
	format, err := s.processor.FormatFor(path)
	if err != nil {
		return err
	}

	path = resolveTarget(path)

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := utils.GenerateTempName(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := s.processor.Encode(f, img, format); err != nil {
		f.Close()
		s.discard(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		s.discard(tmp)
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		s.discard(tmp)
		return fmt.Errorf("failed to move image into place: %w", err)
	}

	return nil
}

// resolveTarget follows a symlink at path so the rename replaces the file it
// points to and leaves the link in place. A dangling link resolves to its
// target, which is then created.
func resolveTarget(path string) string {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return path
	}
	if target, err := filepath.EvalSymlinks(path); err == nil {
		return target
	}
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}

func (s *StorageService) discard(tmp string) {
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove temp file", zap.String("path", tmp), zap.Error(err))
	}
}
