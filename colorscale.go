package surfview

// RGB is a color with each component in [0, 1].
type RGB [3]float64

// RGBA is an RGB color with an alpha component, also in [0, 1].
type RGBA [4]float64

// Default anchor colors for the diverging scale: blue through light
// gray to green.
var (
	DefaultStartColor  = RGB{0.0, 0.0, 1.0}
	DefaultMiddleColor = RGB{0.9, 0.9, 0.9}
	DefaultEndColor    = RGB{0.0, 1.0, 0.0}
)

const (
	lutSize = 512
	lutHalf = lutSize / 2

	// domainScale shrinks the requested range before values are mapped
	// to table entries: a scale built for [min, max] actually spans
	// [min*0.5, max*0.5]. Values beyond the shrunk domain saturate at
	// the end colors, so the anchor hues are reached at half the
	// requested magnitude.
	domainScale = 0.5
)

// ColorScale is a discrete diverging lookup table. The lower 256
// entries run from the start color to the middle color, the upper 256
// from the middle color to the end color. Immutable once built.
type ColorScale struct {
	table     [lutSize]RGBA
	domainMin float64
	domainMax float64
}

// NewColorScale builds a diverging lookup table for values in
// [minimum, maximum] with the given anchor colors. Alpha is always
// fully opaque.
func NewColorScale(minimum, maximum float64, start, middle, end RGB) *ColorScale {
	cs := &ColorScale{
		domainMin: minimum * domainScale,
		domainMax: maximum * domainScale,
	}

	// Lower half: most negative value at entry 0 (start color), value
	// near zero at entry 255 (middle color).
	for i := 0; i < lutHalf; i++ {
		w := float64(i) / 255.0
		cs.table[i] = RGBA{
			(middle[0]-start[0])*w + start[0],
			(middle[1]-start[1])*w + start[1],
			(middle[2]-start[2])*w + start[2],
			1.0,
		}
	}

	// Upper half. This loop interpolates in the opposite direction,
	// from the end color back toward the middle color with a reversed
	// weight. Do not merge the two loops into one formula.
	for i := 0; i < lutHalf; i++ {
		w := float64(255-i) / 255.0
		cs.table[lutHalf+i] = RGBA{
			(middle[0]-end[0])*w + end[0],
			(middle[1]-end[1])*w + end[1],
			(middle[2]-end[2])*w + end[2],
			1.0,
		}
	}

	return cs
}

// Size returns the number of table entries.
func (cs *ColorScale) Size() int {
	return lutSize
}

// Entry returns table entry i. Panics if i is outside [0, Size).
func (cs *ColorScale) Entry(i int) RGBA {
	return cs.table[i]
}

// Domain returns the effective value range of the table, after the
// domain scaling has been applied.
func (cs *ColorScale) Domain() (float64, float64) {
	return cs.domainMin, cs.domainMax
}

// Lookup maps a scalar value onto a table entry, clamping values
// outside the domain to the first and last entries.
func (cs *ColorScale) Lookup(v float64) RGBA {
	span := cs.domainMax - cs.domainMin
	if span == 0 {
		span = 1.0
	}
	i := int((v - cs.domainMin) / span * float64(lutSize-1))
	i = clamp(i, 0, lutSize-1)
	return cs.table[i]
}
