// Package viewer defines the scene-consumer contract and the shipped
// offscreen backend. The decode/build core only ever sees the Renderer
// interface, so it stays free of any graphics library.
package viewer

import (
	"tri-viewer/internal/camera"
	"tri-viewer/internal/scene"
)

// Renderer consumes a built scene. Implementations own the whole render
// loop: Run blocks until the view has been presented (for the offscreen
// backend, until every frame is written).
type Renderer interface {
	LoadPrimitives(prims []scene.Primitive) error
	Configure(opts Options)
	SetCamera(view camera.View)
	Run() error
}

// Options tunes how a backend presents the scene.
type Options struct {
	Background    scene.Color
	ShowBackfaces bool
	LineWidth     float64
	PointSize     float64
	Lighting      bool
}

// DefaultOptions returns the stock presentation: dark background, backfaces
// visible, lighting on.
func DefaultOptions() Options {
	return Options{
		Background:    scene.Color{R: 0.1, G: 0.1, B: 0.1},
		ShowBackfaces: true,
		LineWidth:     2,
		PointSize:     3,
		Lighting:      true,
	}
}
