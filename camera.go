package surfview

import "github.com/go-gl/mathgl/mgl64"

// minViewDistance keeps the camera from zooming through the mesh and
// past the near plane.
const minViewDistance = 1.0

// Camera is an orbit camera: accumulated rotation angles around a focus
// point plus a view distance for zooming.
type Camera struct {
	angleX float64
	angleY float64
	dist   float64
}

func NewCamera(distance float64) *Camera {
	if distance < minViewDistance {
		distance = minViewDistance
	}
	return &Camera{dist: distance}
}

// AddAngle accumulates rotation around the X and Y axes, in radians.
func (c *Camera) AddAngle(x, y float64) {
	c.angleX += x
	c.angleY += y
}

// Zoom scales the view distance; factors below 1 move the camera
// closer.
func (c *Camera) Zoom(factor float64) {
	c.dist *= factor
	if c.dist < minViewDistance {
		c.dist = minViewDistance
	}
}

// Distance returns the current view distance.
func (c *Camera) Distance() float64 {
	return c.dist
}

// ViewMatrix builds the world-to-camera transform: translate the focus
// point to the origin, apply the accumulated rotation, then push the
// scene down +Z to the view distance.
func (c *Camera) ViewMatrix(focus [3]float64) Matrix {
	rotX := mgl64.HomogRotate3DX(-c.angleX)
	rotY := mgl64.HomogRotate3DY(-c.angleY)
	center := mgl64.Translate3D(-focus[0], -focus[1], -focus[2])
	view := mgl64.Translate3D(0, 0, c.dist).Mul4(rotX.Mul4(rotY)).Mul4(center)
	return ToSurfMatrix(view)
}
