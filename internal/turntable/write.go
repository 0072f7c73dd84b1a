package turntable

import (
	"image"

	"tri-viewer/internal/snapshot"
)

// WriteFrame encodes one frame to its FramePath.
func WriteFrame(base string, frame, total int, img image.Image) error {
	return snapshot.Write(FramePath(base, frame, total), img)
}
