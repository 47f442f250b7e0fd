package surfview

import (
	"math"
	"testing"
)

func TestCameraViewMatrixPlacesFocusAtViewDistance(t *testing.T) {
	cam := NewCamera(200)
	focus := [3]float64{10, -5, 3}

	got := cam.ViewMatrix(focus).TransformPoint(focus)
	want := [3]float64{0, 0, 200}
	for a := 0; a < 3; a++ {
		if !almostEqual(got[a], want[a]) {
			t.Errorf("axis %d: got %v, want %v", a, got[a], want[a])
		}
	}
}

func TestCameraRotationPreservesDistanceToFocus(t *testing.T) {
	cam := NewCamera(100)
	cam.AddAngle(0.3, -1.2)
	focus := [3]float64{0, 0, 0}
	point := [3]float64{5, 7, -2}

	p := cam.ViewMatrix(focus).TransformPoint(point)
	// Distance from the camera-space focus position (0, 0, dist).
	dx, dy, dz := p[0], p[1], p[2]-100
	got := math.Sqrt(dx*dx + dy*dy + dz*dz)
	want := math.Sqrt(5*5 + 7*7 + 2*2)
	if !almostEqual(got, want) {
		t.Errorf("rotated distance = %v, want %v", got, want)
	}
}

func TestCameraZoomClampsAtMinimum(t *testing.T) {
	cam := NewCamera(10)
	for i := 0; i < 100; i++ {
		cam.Zoom(0.5)
	}
	if cam.Distance() < minViewDistance {
		t.Errorf("distance %v fell below the minimum %v", cam.Distance(), minViewDistance)
	}

	cam.Zoom(2)
	if !almostEqual(cam.Distance(), minViewDistance*2) {
		t.Errorf("zooming out from the minimum should double the distance, got %v", cam.Distance())
	}
}

func TestMatrixTransformPoints(t *testing.T) {
	m := IdentMatrix()
	m[3][0], m[3][1], m[3][2] = 1, 2, 3

	src := [][3]float64{{0, 0, 0}, {1, 1, 1}}
	dst := make([][3]float64, len(src))
	m.TransformPoints(dst, src)

	want := [][3]float64{{1, 2, 3}, {2, 3, 4}}
	for i := range want {
		for a := 0; a < 3; a++ {
			if !almostEqual(dst[i][a], want[i][a]) {
				t.Errorf("point %d axis %d: got %v, want %v", i, a, dst[i][a], want[i][a])
			}
		}
	}
}
