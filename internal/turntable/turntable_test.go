package turntable

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestFramePath(t *testing.T) {
	tests := []struct {
		base  string
		frame int
		total int
		want  string
	}{
		{"scene.webp", 0, 1, "scene.webp"},
		{"scene.webp", 0, 12, "scene_000.webp"},
		{"scene.webp", 7, 12, "scene_007.webp"},
		{"out/orbit.png", 36, 100, "out/orbit_036.png"},
		{"scene.webp", 999, 1000, "scene_999.webp"},
		{"scene.webp", 5, 20000, "scene_00005.webp"},
	}
	for _, tc := range tests {
		if got := FramePath(tc.base, tc.frame, tc.total); got != tc.want {
			t.Errorf("FramePath(%q, %d, %d) = %q, want %q",
				tc.base, tc.frame, tc.total, got, tc.want)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	const frames = 5

	var rendered [frames]bool
	results := Run(Config{
		Frames:  frames,
		Workers: 2,
		Output:  filepath.Join(dir, "orbit.png"),
		Render: func(frame int) (image.Image, error) {
			rendered[frame] = true
			return image.NewNRGBA(image.Rect(0, 0, 2, 2)), nil
		},
	})

	if len(results) != frames {
		t.Fatalf("got %d results, want %d", len(results), frames)
	}
	for i, r := range results {
		if r.Frame != i {
			t.Errorf("result %d reports frame %d", i, r.Frame)
		}
		if r.Err != nil {
			t.Errorf("frame %d: %v", i, r.Err)
			continue
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("frame %d not written: %v", i, err)
		}
		if !rendered[i] {
			t.Errorf("frame %d never rendered", i)
		}
	}
}

func TestRunRenderFailure(t *testing.T) {
	boom := errors.New("rasterizer exploded")
	results := Run(Config{
		Frames:  3,
		Workers: 1,
		Output:  filepath.Join(t.TempDir(), "orbit.png"),
		Render: func(frame int) (image.Image, error) {
			if frame == 1 {
				return nil, boom
			}
			return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
		},
	})

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("healthy frames failed: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, boom) {
		t.Errorf("frame 1 error = %v, want wrapped render failure", results[1].Err)
	}
}

func TestRunSingleFrameKeepsPath(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "single.png")
	results := Run(Config{
		Frames: 1,
		Output: out,
		Render: func(int) (image.Image, error) {
			return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
		},
	})
	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}
	if results[0].Path != out {
		t.Errorf("path = %q, want %q", results[0].Path, out)
	}
}

func TestRunLogfProgressOptional(t *testing.T) {
	// Nil Logf must not panic, and a set Logf must be usable from the
	// ticker goroutine.
	_ = Run(Config{
		Frames: 2,
		Output: filepath.Join(t.TempDir(), "o.png"),
		Logf:   func(format string, args ...any) { _ = fmt.Sprintf(format, args...) },
		Render: func(int) (image.Image, error) {
			return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
		},
	})
}
