package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// CreateThumb writes a resized copy of an already-saved image into a "thumb"
// subdirectory next to it, keeping the aspect ratio at the given width.
func CreateThumb(id, dir, ext string, width int) error {
	img, err := imaging.Open(filepath.Join(dir, id+ext))
	if err != nil {
		return fmt.Errorf("failed to open image for thumbnail: %w", err)
	}

	thumbDir := filepath.Join(dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	thumbImg := imaging.Resize(img, width, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, id+ext)); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}
	return nil
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
