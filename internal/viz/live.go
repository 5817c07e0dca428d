package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/config"
	"github.com/Bunch-of-cells/oganesson/internal/metrics"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
	trailCapacity   = 600
	maxStepsPerTick = 256
)

type TickMsg time.Time

// Model is the bubbletea model of the live view. It owns a universe built
// from a scene config and steps it between frames; the first two axes are
// drawn on a braille canvas, three and more dimensions go through the
// wireframe camera.
type Model struct {
	cfg     *config.Config
	uni     *universe.Universe
	dt      quantity.Scalar
	fps     int
	speed   int
	canvas  *Canvas
	camera  *Camera
	trail   []Vec3
	energy  []float64
	extent  float64
	running bool
	help    bool
}

// NewModel builds the universe from cfg and prepares the view. fps values
// below one fall back to 30.
func NewModel(cfg *config.Config, fps int) (Model, error) {
	uni, err := cfg.Build()
	if err != nil {
		return Model{}, err
	}
	if fps < 1 {
		fps = 30
	}

	m := Model{
		cfg:     cfg,
		uni:     uni,
		dt:      quantity.Seconds(cfg.Dt),
		fps:     fps,
		speed:   1,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		camera:  NewCamera(),
		trail:   make([]Vec3, 0, trailCapacity),
		energy:  make([]float64, 0, historyCapacity),
		extent:  1e-9,
		running: true,
	}
	m.updateExtent()
	m.draw()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and advances the simulation on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			if m.speed < maxStepsPerTick {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "t":
			NextTheme()
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "?":
			m.help = !m.help
		}
		m.draw()
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

// step advances the universe by speed steps and samples the total energy.
func (m *Model) step() {
	for i := 0; i < m.speed; i++ {
		m.uni.Step(m.dt)
	}

	m.energy = append(m.energy, metrics.TotalEnergy(m.uni).Value)
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}

	for _, b := range m.uni.Objects() {
		m.trail = append(m.trail, worldVec3(b.Position()))
	}
	if over := len(m.trail) - trailCapacity; over > 0 {
		m.trail = m.trail[over:]
	}

	m.updateExtent()
}

// reset rebuilds the universe from the scene config.
func (m *Model) reset() {
	uni, err := m.cfg.Build()
	if err != nil {
		return
	}
	m.uni = uni
	m.trail = m.trail[:0]
	m.energy = m.energy[:0]
	m.extent = 1e-9
	m.speed = 1
	m.updateExtent()
}

// updateExtent grows the world extent to cover every bounding box, so the
// view only ever zooms out and bodies cannot jitter at the edges.
func (m *Model) updateExtent() {
	for _, b := range m.uni.Objects() {
		box := b.BoundingBox()
		for i := 0; i < m.uni.Dim() && i < 3; i++ {
			if a := math.Abs(box.Min.At(i)); a > m.extent {
				m.extent = a
			}
			if a := math.Abs(box.Max.At(i)); a > m.extent {
				m.extent = a
			}
		}
	}
}

func worldVec3(pos quantity.Vector) Vec3 {
	var v Vec3
	v.X = pos.At(0)
	if pos.Len() > 1 {
		v.Y = pos.At(1)
	}
	if pos.Len() > 2 {
		v.Z = pos.At(2)
	}
	return v
}

func (m *Model) draw() {
	m.canvas.Clear()
	if m.uni.Dim() >= 3 {
		m.draw3D()
	} else {
		m.draw2D()
	}
}

// project maps world coordinates to canvas pixels, centered and scaled so
// the extent fits with a margin.
func (m *Model) project(wx, wy float64) (int, int) {
	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	scale := m.pixelScale()
	return cw/2 + int(wx*scale), ch/2 - int(wy*scale)
}

func (m *Model) pixelScale() float64 {
	cw, ch := float64(m.canvas.Width*2), float64(m.canvas.Height*4)
	return 0.45 * math.Min(cw, ch) / m.extent
}

func (m *Model) draw2D() {
	for _, p := range m.trail {
		px, py := m.project(p.X, p.Y)
		m.canvas.Set(px, py)
	}

	for _, b := range m.uni.Objects() {
		p := worldVec3(b.Position())
		px, py := m.project(p.X, p.Y)

		switch s := b.Shape().(type) {
		case body.Sphere:
			m.canvas.DrawCircle(px, py, int(s.Radius.Value*m.pixelScale()))
			m.canvas.Set(px, py)
		case body.Polygon:
			m.drawPolygon2D(b, s)
		default:
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					m.canvas.Set(px+dx, py+dy)
				}
			}
		}
	}
}

func (m *Model) drawPolygon2D(b *body.Body, poly body.Polygon) {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		from := worldVec3(b.Position().Add(poly.Points[i]))
		to := worldVec3(b.Position().Add(poly.Points[(i+1)%n]))
		x0, y0 := m.project(from.X, from.Y)
		x1, y1 := m.project(to.X, to.Y)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
}

func (m *Model) draw3D() {
	inv := 1 / m.extent
	wf := AxesWireframe(1.0)

	for _, p := range m.trail {
		wf.AddPoint(p.Scale(inv))
	}

	for _, b := range m.uni.Objects() {
		center := worldVec3(b.Position()).Scale(inv)

		switch s := b.Shape().(type) {
		case body.Sphere:
			r := s.Radius.Value * inv
			wf.AddRing(center, r, Vec3{X: 1}, Vec3{Y: 1}, 12)
			wf.AddRing(center, r, Vec3{X: 1}, Vec3{Z: 1}, 12)
		case body.Polygon:
			n := len(s.Points)
			for i := 0; i < n; i++ {
				from := worldVec3(b.Position().Add(s.Points[i])).Scale(inv)
				to := worldVec3(b.Position().Add(s.Points[(i+1)%n])).Scale(inv)
				wf.AddEdge(from, to)
			}
		default:
			wf.AddPoint(center)
		}
	}

	// Idle rotation until the user takes the camera.
	if m.camera.RotX == 0 && m.camera.RotZ == 0 {
		m.camera.RotateY(0.005)
	}
	Render3D(m.canvas, wf, m.camera)
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerText(strings.ToUpper(sceneName(m.cfg))) + "\n")
	if m.running {
		s.WriteString(valueText("RUNNING") + "\n\n")
	} else {
		s.WriteString(warnText("PAUSED") + "\n\n")
	}

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("total energy"))
		s.WriteString(graphText(chart) + "\n\n")
	}

	s.WriteString(labelText("Time") + valueText(fmt.Sprintf("%.3fs", m.uni.Time().Value)) + "\n")
	s.WriteString(labelText("Bodies") + valueText(fmt.Sprintf("%d", len(m.uni.Objects()))) + "\n")
	s.WriteString(labelText("Dimensions") + valueText(fmt.Sprintf("%d", m.uni.Dim())) + "\n")
	if len(m.energy) > 0 {
		s.WriteString(labelText("Energy") + valueText(fmt.Sprintf("%.4g J", m.energy[len(m.energy)-1])) + "\n")
	}
	momentum := metrics.TotalMomentum(m.uni).Magnitude().Value
	s.WriteString(labelText("|Momentum|") + valueText(fmt.Sprintf("%.4g", momentum)) + "\n")
	s.WriteString(labelText("Speed") + valueText(fmt.Sprintf("%dx", m.speed)) + "\n")

	s.WriteString(mutedText("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme +/-:Speed ?:Help"))

	statsView := statsPanel(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.help {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func sceneName(cfg *config.Config) string {
	if cfg.Name == "" {
		return "scene"
	}
	return cfg.Name
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset the scene          ║
║  +/-      - Steps per frame          ║
║  T        - Cycle themes             ║
║  X/Y/Z    - Rotate camera (3-D)      ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
