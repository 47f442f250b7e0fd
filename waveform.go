package surfview

import "math"

// GenerateSpike evaluates a spike waveform at the given sample times: a
// sharp exponential peak at the peak location followed by a smaller
// gaussian rebound 20 ms later.
func GenerateSpike(times []float64, peak float64) []float64 {
	const reboundDelay = 0.02
	const sigma = reboundDelay / 3

	y := make([]float64, len(times))
	for i, t := range times {
		d := t - peak
		r := d - reboundDelay
		y[i] = math.Exp(-100*math.Abs(d)) - 0.5*math.Exp(-r*r/(2*sigma*sigma))
	}
	return y
}
