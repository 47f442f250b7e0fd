package surfview

import (
	"fmt"
	"math"
)

// builderStartColor tints the negative end of the scale; the positive
// end keeps the default green through the light-gray midpoint.
var builderStartColor = RGB{1.0, 0.5, 0.5}

// RenderableMesh is a mesh ready to be displayed: geometry plus an
// optional per-vertex scalar field with its diverging color scale.
type RenderableMesh struct {
	mesh   *Mesh
	field  *ScalarField
	scale  *ColorScale
	center [3]float64
	radius float64
}

// BuildRenderable converts vertex/triangle arrays and optional
// per-vertex data into a renderable surface. With vertexData present, a
// diverging color scale over the symmetric range of the data's largest
// magnitude is attached; without it the surface gets a uniform color.
// All validation happens before anything is built.
func BuildRenderable(vertices [][3]float64, triangles [][3]int, vertexData [][]float64) (*RenderableMesh, error) {
	mesh := &Mesh{Vertices: vertices, Triangles: triangles}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	if vertexData != nil && len(vertexData) != len(vertices) {
		return nil, fmt.Errorf("%w: vertex data has %d rows, mesh has %d vertices",
			ErrShapeMismatch, len(vertexData), len(vertices))
	}

	r := &RenderableMesh{mesh: mesh}

	if vertexData != nil {
		field := NewScalarField(vertexData)
		magnitude := field.MaxAbs()
		if magnitude == 0 {
			// All-zero data would collapse the mapping domain.
			magnitude = 1.0
		}
		r.field = field
		r.scale = NewColorScale(-magnitude, magnitude,
			builderStartColor, DefaultMiddleColor, DefaultEndColor)
	}

	r.computeBounds()
	return r, nil
}

// Mesh returns the underlying geometry.
func (r *RenderableMesh) Mesh() *Mesh {
	return r.mesh
}

// Field returns the attached scalar field, or nil when the surface has
// no scalar coloring.
func (r *RenderableMesh) Field() *ScalarField {
	return r.field
}

// Scale returns the color scale built for the field, or nil without a
// field.
func (r *RenderableMesh) Scale() *ColorScale {
	return r.scale
}

// Center returns the center of the mesh's bounding box.
func (r *RenderableMesh) Center() [3]float64 {
	return r.center
}

// Radius returns half the bounding box diagonal, used to place the
// initial camera.
func (r *RenderableMesh) Radius() float64 {
	return r.radius
}

func (r *RenderableMesh) computeBounds() {
	pts := r.mesh.Vertices
	if len(pts) == 0 {
		return
	}

	min := pts[0]
	max := pts[0]
	for _, p := range pts {
		for a := 0; a < 3; a++ {
			if p[a] < min[a] {
				min[a] = p[a]
			} else if p[a] > max[a] {
				max[a] = p[a]
			}
		}
	}

	dx := max[0] - min[0]
	dy := max[1] - min[1]
	dz := max[2] - min[2]
	r.center = [3]float64{
		(min[0] + max[0]) / 2.0,
		(min[1] + max[1]) / 2.0,
		(min[2] + max[2]) / 2.0,
	}
	r.radius = math.Sqrt(dx*dx+dy*dy+dz*dz) / 2.0
}
