package surfview

import "math"

// SphereMesh tessellates a UV sphere into vertex and triangle arrays
// suitable for BuildRenderable. rings is the number of latitude bands
// (minimum 2), segments the number of longitude steps (minimum 3).
func SphereMesh(radius float64, rings, segments int) ([][3]float64, [][3]int) {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	vertices := make([][3]float64, 0, (rings-1)*segments+2)
	vertices = append(vertices, [3]float64{0, radius, 0})
	for r := 1; r < rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := radius * math.Cos(phi)
		ringRadius := radius * math.Sin(phi)
		for s := 0; s < segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			vertices = append(vertices, [3]float64{
				ringRadius * math.Cos(theta),
				y,
				ringRadius * math.Sin(theta),
			})
		}
	}
	bottom := len(vertices)
	vertices = append(vertices, [3]float64{0, -radius, 0})

	// ringIndex wraps around the seam.
	ringIndex := func(r, s int) int {
		return 1 + (r-1)*segments + s%segments
	}

	triangles := make([][3]int, 0, 2*segments*(rings-1))
	for s := 0; s < segments; s++ {
		triangles = append(triangles, [3]int{0, ringIndex(1, s), ringIndex(1, s+1)})
	}
	for r := 1; r < rings-1; r++ {
		for s := 0; s < segments; s++ {
			a := ringIndex(r, s)
			b := ringIndex(r, s+1)
			c := ringIndex(r+1, s)
			d := ringIndex(r+1, s+1)
			triangles = append(triangles, [3]int{a, c, b}, [3]int{b, c, d})
		}
	}
	for s := 0; s < segments; s++ {
		triangles = append(triangles, [3]int{bottom, ringIndex(rings-1, s+1), ringIndex(rings-1, s)})
	}

	return vertices, triangles
}
