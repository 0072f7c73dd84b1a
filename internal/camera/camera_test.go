package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDefault(t *testing.T) {
	v := Default(r3.Vec{X: 1, Y: 2, Z: 3})
	if v.Front != (r3.Vec{Z: -1}) {
		t.Errorf("front = %v, want (0,0,-1)", v.Front)
	}
	if v.Up != (r3.Vec{Y: 1}) {
		t.Errorf("up = %v, want (0,1,0)", v.Up)
	}
	if v.Zoom != 0.8 {
		t.Errorf("zoom = %v, want 0.8", v.Zoom)
	}
	if v.LookAt != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("look-at = %v", v.LookAt)
	}
}

func TestFit(t *testing.T) {
	const radius = 10.0
	v := Default(r3.Vec{})
	eye, near, far := v.Fit(radius)

	wantDist := radius / (0.8 * math.Tan(Fovy*math.Pi/360))
	gotDist := r3.Norm(eye)
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Errorf("eye distance = %v, want %v", gotDist, wantDist)
	}

	// Eye sits along the front direction from the look-at point.
	if eye.X != 0 || eye.Y != 0 || eye.Z >= 0 {
		t.Errorf("eye = %v, want on the -Z axis", eye)
	}

	if near <= 0 {
		t.Errorf("near = %v, want positive", near)
	}
	if far <= gotDist+radius {
		t.Errorf("far = %v does not clear the bounding sphere (dist=%v)", far, gotDist)
	}
}

func TestFitOffsetLookAt(t *testing.T) {
	v := Default(r3.Vec{X: 100})
	eye, _, _ := v.Fit(5)
	if eye.X != 100 || eye.Y != 0 {
		t.Errorf("eye = %v, want offset along look-at", eye)
	}
}

func TestFitDegenerate(t *testing.T) {
	// Zero radius and zero zoom must not produce NaN or an eye at the
	// look-at point.
	v := View{}
	eye, near, far := v.Fit(0)
	for _, f := range []float64{eye.X, eye.Y, eye.Z, near, far} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("degenerate fit produced %v", f)
		}
	}
	if r3.Norm(eye) == 0 {
		t.Error("eye collapsed onto the look-at point")
	}
}

func TestOrbit(t *testing.T) {
	v := Default(r3.Vec{})

	if got := v.Orbit(0, 8); got.Front != v.Front {
		t.Errorf("frame 0 moved the camera: %v", got.Front)
	}

	half := v.Orbit(4, 8)
	if math.Abs(half.Front.Z-1) > 1e-9 || math.Abs(half.Front.X) > 1e-9 {
		t.Errorf("half turn front = %v, want (0,0,1)", half.Front)
	}

	quarter := v.Orbit(2, 8)
	if math.Abs(math.Abs(quarter.Front.X)-1) > 1e-9 || math.Abs(quarter.Front.Z) > 1e-9 {
		t.Errorf("quarter turn front = %v, want on the X axis", quarter.Front)
	}

	// Orbit preserves look-at and up.
	if half.LookAt != v.LookAt || half.Up != v.Up {
		t.Error("orbit moved look-at or up")
	}
}
