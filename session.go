package surfview

import (
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// projectionScale is the perspective projection factor used when
	// mapping camera-space points onto the screen.
	projectionScale = 400.0

	// nearPlaneZ rejects triangles that reach behind the camera.
	nearPlaneZ = 1.0

	// initialDistanceFactor places the camera far enough back that the
	// whole mesh is in view when the session opens.
	initialDistanceFactor = 2.5
)

// RenderSession owns the render target, the orbit camera, and exactly
// one renderable mesh for its lifetime. It implements ebiten.Game and
// blocks inside the event loop until the user quits.
type RenderSession struct {
	cfg        *Config
	renderable *RenderableMesh
	camera     *Camera
	controller *InteractionController
	batch      *triangleBatch

	// camera-space points and triangle draw order, reused every frame
	points [][3]float64
	order  []int

	dragging     bool
	lastX, lastY int
	closed       bool
}

func NewRenderSession(r *RenderableMesh, cfg *Config) *RenderSession {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	columns := 0
	if r.Field() != nil {
		columns = r.Field().Columns()
	}

	return &RenderSession{
		cfg:        cfg,
		renderable: r,
		camera:     NewCamera(r.Radius() * initialDistanceFactor),
		controller: NewInteractionController(columns),
		batch:      newTriangleBatch(len(r.Mesh().Triangles)),
		points:     make([][3]float64, len(r.Mesh().Vertices)),
		order:      make([]int, 0, len(r.Mesh().Triangles)),
	}
}

// Controller exposes the session's interaction state machine.
func (s *RenderSession) Controller() *InteractionController {
	return s.controller
}

// Run blocks inside the interactive loop until the user presses q or
// closes the window. Resources are released exactly once on the way
// out.
func (s *RenderSession) Run() error {
	ebiten.SetWindowSize(s.cfg.WindowWidth, s.cfg.WindowHeight)
	ebiten.SetWindowTitle(s.cfg.Title)
	err := ebiten.RunGame(s)
	s.Close()
	return err
}

// Update dispatches input: Right/Left cycle the active component, q
// quits, everything else is left to the camera interaction.
func (s *RenderSession) Update() error {
	if s.controller.Quitting() {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.controller.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.controller.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.controller.Quit()
		return ebiten.Termination
	}

	// Mouse camera control.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
		s.lastX, s.lastY = ebiten.CursorPosition()
	}
	if s.dragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-s.lastX) * s.cfg.DragSpeed
		dy := float64(y-s.lastY) * s.cfg.DragSpeed
		s.camera.AddAngle(dy, dx)
		s.lastX, s.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.dragging = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		if wheelY > 0 {
			s.camera.Zoom(1.0 / s.cfg.ZoomStep)
		} else {
			s.camera.Zoom(s.cfg.ZoomStep)
		}
	}

	return nil
}

func (s *RenderSession) Draw(screen *ebiten.Image) {
	if s.closed {
		return
	}

	bg := s.cfg.Background
	screen.Fill(color.RGBA{
		R: uint8(bg[0] * 255),
		G: uint8(bg[1] * 255),
		B: uint8(bg[2] * 255),
		A: 255,
	})

	mesh := s.renderable.Mesh()
	if len(mesh.Triangles) == 0 {
		return
	}

	view := s.camera.ViewMatrix(s.renderable.Center())
	view.TransformPoints(s.points, mesh.Vertices)

	// Painter's algorithm: sort triangles far to near by camera-space
	// depth, dropping anything touching the near plane.
	s.order = s.order[:0]
	for i, tri := range mesh.Triangles {
		if s.points[tri[0]][2] <= nearPlaneZ ||
			s.points[tri[1]][2] <= nearPlaneZ ||
			s.points[tri[2]][2] <= nearPlaneZ {
			continue
		}
		s.order = append(s.order, i)
	}
	sort.Slice(s.order, func(a, b int) bool {
		return s.triangleDepth(s.order[a]) > s.triangleDepth(s.order[b])
	})

	cx := float32(s.cfg.WindowWidth / 2)
	cy := float32(s.cfg.WindowHeight / 2)
	component := s.controller.Component()

	for _, ti := range s.order {
		tri := mesh.Triangles[ti]

		var xp, yp [3]float32
		for i := 0; i < 3; i++ {
			p := s.points[tri[i]]
			xp[i] = float32(projectionScale*p[0]/p[2]) + cx
			yp[i] = -float32(projectionScale*p[1]/p[2]) + cy
		}

		var colors [3]RGBA
		if s.renderable.Field() != nil {
			for i := 0; i < 3; i++ {
				colors[i] = s.renderable.Scale().Lookup(
					s.renderable.Field().Value(tri[i], component))
			}
		} else {
			c := s.shadeUniform(tri)
			colors[0], colors[1], colors[2] = c, c, c
		}

		s.batch.Add(screen, xp, yp, colors)
	}
	s.batch.Flush(screen)
}

func (s *RenderSession) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.WindowWidth, s.cfg.WindowHeight
}

// Close releases the session's drawing resources. Safe to call more
// than once; only the first call does any work.
func (s *RenderSession) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.controller.Quit()
	s.batch = nil
	s.points = nil
	s.order = nil
	log.Println("render session closed")
}

func (s *RenderSession) triangleDepth(ti int) float64 {
	tri := s.renderable.Mesh().Triangles[ti]
	return (s.points[tri[0]][2] + s.points[tri[1]][2] + s.points[tri[2]][2]) / 3.0
}

// uniformSurfaceColor is the base color for meshes without a scalar
// field.
var uniformSurfaceColor = RGB{0.75, 0.75, 0.75}

// shadeUniform applies simple flat lighting to the uniform surface
// color using the triangle's camera-space normal.
func (s *RenderSession) shadeUniform(tri [3]int) RGBA {
	p0, p1, p2 := s.points[tri[0]], s.points[tri[1]], s.points[tri[2]]
	u := Subtract(NewVector3(p1[0], p1[1], p1[2]), NewVector3(p0[0], p0[1], p0[2]))
	v := Subtract(NewVector3(p2[0], p2[1], p2[2]), NewVector3(p0[0], p0[1], p0[2]))
	n := Cross(u, v)
	n.Normalize()

	light := NewVector3(0.577, 0.577, -0.577)
	d := Dot(n, light)
	if d < 0 {
		d = -d
	}
	intensity := 0.2 + 0.8*d

	return RGBA{
		uniformSurfaceColor[0] * intensity,
		uniformSurfaceColor[1] * intensity,
		uniformSurfaceColor[2] * intensity,
		1.0,
	}
}

// DisplayMesh builds a renderable surface from the given geometry and
// optional per-vertex data, then blocks in an interactive window until
// the user quits. This is the package's boundary API.
func DisplayMesh(vertices [][3]float64, triangles [][3]int, vertexData [][]float64) error {
	r, err := BuildRenderable(vertices, triangles, vertexData)
	if err != nil {
		return err
	}
	return NewRenderSession(r, nil).Run()
}
