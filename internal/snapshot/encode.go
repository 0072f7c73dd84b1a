// Package snapshot writes rendered frames to disk, choosing the codec from
// the file extension.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Write encodes img to path. Supported extensions: .webp, .png, .tga.
// The extension is validated before the file is created, so an unsupported
// path never leaves a partial artifact behind.
func Write(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}

	if err := enc(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		}, nil
	case ".png":
		return png.Encode, nil
	case ".tga":
		return tga.Encode, nil
	default:
		return nil, fmt.Errorf("snapshot: unsupported extension %q (want .webp, .png or .tga)", filepath.Ext(path))
	}
}
