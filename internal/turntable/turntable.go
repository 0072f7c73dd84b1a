// Package turntable renders numbered orbit frames through a worker pool.
// It owns frame naming and disk output; the actual rasterization is
// injected, so the package has no renderer dependency.
package turntable

import (
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds shared resources for one orbit run.
type Config struct {
	Frames  int
	Workers int
	Output  string // base path; the frame index is inserted before the extension

	// Render rasterizes one frame. Called concurrently from workers.
	Render func(frame int) (image.Image, error)

	// Logf receives progress diagnostics. Nil means silent.
	Logf func(format string, args ...any)
}

// Result holds the outcome of one frame.
type Result struct {
	Frame int
	Path  string
	Err   error
}

// Run renders all frames and returns one Result per frame, in frame order.
func Run(cfg Config) []Result {
	total := cfg.Frames
	if total < 1 {
		total = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, total)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && cfg.Logf != nil {
					elapsed := time.Since(start).Seconds()
					cfg.Logf("  [%d/%d] %.1f frames/sec", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for frame := range frameChan {
				results[frame] = processFrame(cfg, frame, total)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, frame, total int) Result {
	path := FramePath(cfg.Output, frame, total)
	img, err := cfg.Render(frame)
	if err != nil {
		return Result{Frame: frame, Path: path, Err: err}
	}
	if err := WriteFrame(cfg.Output, frame, total, img); err != nil {
		return Result{Frame: frame, Path: path, Err: err}
	}
	return Result{Frame: frame, Path: path}
}

// FramePath returns the output path for one frame. A single-frame run keeps
// the base path unchanged; orbits get a zero-padded index before the
// extension, e.g. scene.webp → scene_007.webp.
func FramePath(base string, frame, total int) string {
	if total <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	width := len(fmt.Sprintf("%d", total-1))
	if width < 3 {
		width = 3
	}
	return fmt.Sprintf("%s_%0*d%s", stem, width, frame, ext)
}
