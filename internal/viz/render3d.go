package viz

import (
	"math"
	"sort"
)

// Vec3 is a screen-space point for the 3-D render path. Universes with three
// or more dimensions are drawn through it using their first three axes.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera projects world points onto the canvas plane.
type Camera struct {
	Position         Vec3
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Position: Vec3{0, 0, 5}, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint applies the camera's rotation to a world point.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts a world point to pixel coordinates. It returns x, y,
// depth, and whether the point lands on screen.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

// Wireframe collects the edges of one frame. Bodies contribute rings and
// outlines; single points are edges of zero length.
type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3)   { w.Edges = append(w.Edges, Edge{p, p}) }
func (w *Wireframe) Clear()            { w.Edges = w.Edges[:0] }

// AddRing appends a segmented circle of the given radius around center,
// lying in the plane spanned by axes u and v.
func (w *Wireframe) AddRing(center Vec3, radius float64, u, v Vec3, segments int) {
	if segments < 3 {
		segments = 3
	}
	prev := center.Add(u.Scale(radius))
	for i := 1; i <= segments; i++ {
		a := float64(i) * 2 * math.Pi / float64(segments)
		next := center.Add(u.Scale(radius * math.Cos(a))).Add(v.Scale(radius * math.Sin(a)))
		w.AddEdge(prev, next)
		prev = next
	}
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws the wireframe to the canvas back to front.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// AxesWireframe builds the three coordinate half-axes with length l.
func AxesWireframe(l float64) *Wireframe {
	w, o := NewWireframe(), Vec3{0, 0, 0}
	w.AddEdge(o, Vec3{l, 0, 0})
	w.AddEdge(o, Vec3{0, l, 0})
	w.AddEdge(o, Vec3{0, 0, l})
	return w
}
