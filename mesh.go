package surfview

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when per-vertex data does not have
	// one row per mesh vertex.
	ErrShapeMismatch = errors.New("vertex data shape mismatch")

	// ErrIndexOutOfRange is returned when a triangle references a
	// vertex index that does not exist.
	ErrIndexOutOfRange = errors.New("triangle index out of range")
)

// Mesh is a triangulated surface: vertex coordinates plus triangles as
// 0-based index triples into the vertex list. An empty mesh is valid
// and renders nothing.
type Mesh struct {
	Vertices  [][3]float64
	Triangles [][3]int
}

// Validate checks that every triangle index refers to an existing
// vertex.
func (m *Mesh) Validate() error {
	for ti, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: triangle %d references vertex %d, mesh has %d vertices",
					ErrIndexOutOfRange, ti, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// ScalarField is per-vertex multi-component data: one row per vertex,
// one column per component (time point or channel).
type ScalarField struct {
	values [][]float64
}

// NewScalarField wraps a rectangular table of per-vertex values.
func NewScalarField(values [][]float64) *ScalarField {
	return &ScalarField{values: values}
}

// Rows returns the number of vertices covered by the field.
func (f *ScalarField) Rows() int {
	return len(f.values)
}

// Columns returns the number of components per vertex.
func (f *ScalarField) Columns() int {
	if len(f.values) == 0 {
		return 0
	}
	return len(f.values[0])
}

// Value returns the field value at the given row and component. The
// component is clamped to the valid column range, so a selector sitting
// one past the last column reads the last column instead of going out
// of bounds.
func (f *ScalarField) Value(row, component int) float64 {
	r := f.values[row]
	if len(r) == 0 {
		return 0
	}
	return r[clamp(component, 0, len(r)-1)]
}

// MaxAbs returns the largest absolute value in the field.
func (f *ScalarField) MaxAbs() float64 {
	max := 0.0
	for _, row := range f.values {
		for _, v := range row {
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}
