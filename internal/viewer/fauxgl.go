package viewer

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/spatial/r3"

	"tri-viewer/internal/camera"
	"tri-viewer/internal/postprocess"
	"tri-viewer/internal/scene"
	"tri-viewer/internal/turntable"
)

// Fauxgl renders the scene offscreen with the fauxgl software rasterizer
// and writes snapshot files. With Frames > 1 it renders a turntable orbit
// instead of a single view.
type Fauxgl struct {
	Width, Height int
	Supersample   int
	Output        string // snapshot path; extension selects the codec
	Frames        int
	Workers       int
	SphereDetail  int    // icosphere subdivision level for LOS markers
	Title         string // scene title, shown in diagnostics only

	// Logf receives progress diagnostics. Nil means silent.
	Logf func(format string, args ...any)

	opts     Options
	view     camera.View
	hasView  bool
	groups   []drawGroup
	min, max r3.Vec
	hasPrims bool
}

// drawGroup is one uniformly colored fauxgl mesh. Line groups are drawn
// unlit regardless of the lighting option.
type drawGroup struct {
	mesh  *fauxgl.Mesh
	color fauxgl.Color
	lines bool
}

// LoadPrimitives converts scene primitives into fauxgl geometry and
// accumulates the scene bounds used for camera framing.
func (f *Fauxgl) LoadPrimitives(prims []scene.Primitive) error {
	detail := f.SphereDetail
	if detail <= 0 {
		detail = 2
	}

	for _, p := range prims {
		switch p := p.(type) {
		case scene.Mesh:
			tris := make([]*fauxgl.Triangle, 0, len(p.Faces))
			for _, face := range p.Faces {
				a := p.Vertices[face[0]]
				b := p.Vertices[face[1]]
				c := p.Vertices[face[2]]
				tris = append(tris, fauxgl.NewTriangleForPoints(
					vertex32(a), vertex32(b), vertex32(c)))
				f.extend32(a)
				f.extend32(b)
				f.extend32(c)
			}
			m := fauxgl.NewTriangleMesh(tris)
			m.SmoothNormals()
			f.groups = append(f.groups, drawGroup{mesh: m, color: color(p.Color)})

		case scene.Sphere:
			s := fauxgl.NewSphere(detail)
			s.Transform(fauxgl.Scale(fauxgl.V(p.Radius, p.Radius, p.Radius)).
				Translate(vector(p.Center)))
			f.groups = append(f.groups, drawGroup{mesh: s, color: color(p.Color)})
			r := r3.Vec{X: p.Radius, Y: p.Radius, Z: p.Radius}
			f.extend(r3.Sub(p.Center, r))
			f.extend(r3.Add(p.Center, r))

		case scene.Segment:
			line := fauxgl.NewLineForPoints(vector(p.A), vector(p.B))
			m := fauxgl.NewLineMesh([]*fauxgl.Line{line})
			f.groups = append(f.groups, drawGroup{mesh: m, color: color(p.Color), lines: true})
			f.extend(p.A)
			f.extend(p.B)

		default:
			return fmt.Errorf("viewer: unknown primitive %T", p)
		}
	}
	return nil
}

func (f *Fauxgl) Configure(opts Options) {
	f.opts = opts
}

func (f *Fauxgl) SetCamera(view camera.View) {
	f.view = view
	f.hasView = true
}

// Run renders the loaded scene and writes the snapshot file(s). It returns
// once every frame is on disk.
func (f *Fauxgl) Run() error {
	if !f.hasPrims {
		return fmt.Errorf("viewer: no primitives loaded")
	}
	if f.Output == "" {
		return fmt.Errorf("viewer: no output path set")
	}

	view := f.view
	if !f.hasView {
		view = camera.Default(f.center())
	}

	if f.Title != "" {
		f.logf("Rendering %s (%dx%d)", f.Title, f.Width, f.Height)
	}

	if f.Frames <= 1 {
		img, err := f.renderFrame(view)
		if err != nil {
			return err
		}
		f.logf("Writing snapshot: %s", f.Output)
		return turntable.WriteFrame(f.Output, 0, 1, img)
	}

	results := turntable.Run(turntable.Config{
		Frames:  f.Frames,
		Workers: f.Workers,
		Output:  f.Output,
		Logf:    f.Logf,
		Render: func(frame int) (image.Image, error) {
			return f.renderFrame(view.Orbit(frame, f.Frames))
		},
	})
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("viewer: frame %d: %w", r.Frame, r.Err)
		}
	}
	return nil
}

// renderFrame rasterizes one view. Safe for concurrent use: every call gets
// its own context and the loaded geometry is read-only after load.
func (f *Fauxgl) renderFrame(view camera.View) (image.Image, error) {
	width, height := f.Width, f.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("viewer: invalid frame size %dx%d", width, height)
	}
	ss := f.Supersample
	if ss < 1 {
		ss = 1
	}

	ctx := fauxgl.NewContext(width*ss, height*ss)
	ctx.ClearColorBufferWith(color(f.opts.Background))
	if f.opts.ShowBackfaces {
		ctx.Cull = fauxgl.CullNone
	}
	lw := f.opts.LineWidth
	if lw <= 0 {
		lw = 1
	}
	ctx.LineWidth = lw * float64(ss)

	center := f.center()
	if r3.Norm(view.LookAt) == 0 && r3.Norm(center) != 0 {
		// Zero-value look-at frames the scene rather than the origin.
		view.LookAt = center
	}
	radius := f.radius(view.LookAt)
	eye, near, far := view.Fit(radius)

	eyeV := vector(eye)
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eyeV, vector(view.LookAt), vector(view.Up)).
		Perspective(camera.Fovy, aspect, near, far)
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()

	for _, g := range f.groups {
		if f.opts.Lighting && !g.lines {
			shader := fauxgl.NewPhongShader(matrix, light, eyeV)
			shader.ObjectColor = g.color
			ctx.Shader = shader
		} else {
			ctx.Shader = fauxgl.NewSolidColorShader(matrix, g.color)
		}
		ctx.DrawMesh(g.mesh)
	}

	img := ctx.Image()
	if ss > 1 {
		return postprocess.Downsample(img, width, height), nil
	}
	return img, nil
}

func (f *Fauxgl) center() r3.Vec {
	if !f.hasPrims {
		return r3.Vec{}
	}
	return r3.Scale(0.5, r3.Add(f.min, f.max))
}

// radius returns the bounding-sphere radius around the look-at point.
func (f *Fauxgl) radius(lookAt r3.Vec) float64 {
	if !f.hasPrims {
		return 1
	}
	r := r3.Norm(r3.Sub(f.max, lookAt))
	if r2 := r3.Norm(r3.Sub(f.min, lookAt)); r2 > r {
		r = r2
	}
	return r
}

func (f *Fauxgl) extend(p r3.Vec) {
	if !f.hasPrims {
		f.min, f.max = p, p
		f.hasPrims = true
		return
	}
	f.min.X = math.Min(f.min.X, p.X)
	f.min.Y = math.Min(f.min.Y, p.Y)
	f.min.Z = math.Min(f.min.Z, p.Z)
	f.max.X = math.Max(f.max.X, p.X)
	f.max.Y = math.Max(f.max.Y, p.Y)
	f.max.Z = math.Max(f.max.Z, p.Z)
}

func (f *Fauxgl) extend32(v [3]float32) {
	f.extend(r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
}

func (f *Fauxgl) logf(format string, args ...any) {
	if f.Logf != nil {
		f.Logf(format, args...)
	}
}

func vector(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}

func vertex32(v [3]float32) fauxgl.Vector {
	return fauxgl.V(float64(v[0]), float64(v[1]), float64(v[2]))
}

func color(c scene.Color) fauxgl.Color {
	return fauxgl.Color{R: c.R, G: c.G, B: c.B, A: 1}
}
