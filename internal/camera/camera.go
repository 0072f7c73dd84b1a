// Package camera computes the initial view for a scene: where the eye sits
// relative to the geometry and how turntable orbits rotate it.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Fovy is the vertical field of view used to fit the scene, in degrees.
const Fovy = 45

// View describes the camera: Front points from the look-at point toward the
// eye, Zoom scales how much of the bounding sphere fills the frame (higher
// means closer).
type View struct {
	Front  r3.Vec
	LookAt r3.Vec
	Up     r3.Vec
	Zoom   float64
}

// Default returns the stock view: looking down -Z with +Y up at zoom 0.8,
// centered on lookAt.
func Default(lookAt r3.Vec) View {
	return View{
		Front:  r3.Vec{Z: -1},
		LookAt: lookAt,
		Up:     r3.Vec{Y: 1},
		Zoom:   0.8,
	}
}

// Fit places the eye to frame a bounding sphere of the given radius around
// the look-at point, and returns the eye position with near/far clip
// distances bracketing the sphere.
func (v View) Fit(radius float64) (eye r3.Vec, near, far float64) {
	if radius < 1e-3 {
		radius = 1e-3
	}
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 0.8
	}

	halfFovy := Fovy * math.Pi / 360
	dist := radius / (zoom * math.Tan(halfFovy))

	front := v.Front
	if r3.Norm(front) == 0 {
		front = r3.Vec{Z: -1}
	}
	eye = r3.Add(v.LookAt, r3.Scale(dist, r3.Unit(front)))

	near = (dist - radius) / 2
	if near < radius*1e-3 {
		near = radius * 1e-3
	}
	far = dist + 2*radius
	return eye, near, far
}

// Orbit returns the view rotated about Up by frame/total of a full turn.
func (v View) Orbit(frame, total int) View {
	if total <= 1 || frame == 0 {
		return v
	}
	up := v.Up
	if r3.Norm(up) == 0 {
		up = r3.Vec{Y: 1}
	}
	angle := 2 * math.Pi * float64(frame) / float64(total)
	rot := r3.NewRotation(angle, up)
	v.Front = rot.Rotate(v.Front)
	return v
}
