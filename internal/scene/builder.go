// Package scene assembles renderable primitives from decoded geometry and
// LOS test rows. It has no knowledge of any rendering library.
package scene

import (
	"tri-viewer/internal/los"
	"tri-viewer/internal/tri"
)

// SphereRadius is the marker sphere radius in world units.
const SphereRadius = 15

// Builder converts a mesh and optional LOS tests into primitives.
// The zero value is ready to use.
type Builder struct {
	// Radius overrides SphereRadius when positive.
	Radius float64

	// Logf receives per-row diagnostics. Nil means silent.
	Logf func(format string, args ...any)
}

// Build returns the scene primitives: one gray Mesh wrapping the full
// geometry, then per LOS row, in table order, a sphere at each player
// position and a segment between them. Green marks visible rows, red
// blocked ones.
func (b Builder) Build(m tri.Mesh, tests []los.Test) []Primitive {
	radius := b.Radius
	if radius <= 0 {
		radius = SphereRadius
	}

	prims := make([]Primitive, 0, 1+3*len(tests))
	prims = append(prims, Mesh{
		Vertices: m.Vertices,
		Faces:    m.Faces,
		Color:    MeshGray,
	})

	for i, t := range tests {
		color, state := Red, "Blocked"
		if t.Visible() {
			color, state = Green, "Visible"
		}
		prims = append(prims,
			Sphere{Center: t.P1, Radius: radius, Color: color},
			Sphere{Center: t.P2, Radius: radius, Color: color},
			Segment{A: t.P1, B: t.P2, Color: color},
		)
		b.logf("Added LOS test %d: %s (%s)", i+1, t.Description, state)
	}

	return prims
}

// Build assembles primitives with default settings.
func Build(m tri.Mesh, tests []los.Test) []Primitive {
	return Builder{}.Build(m, tests)
}

func (b Builder) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}
