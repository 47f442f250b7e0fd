package surfview

import (
	"math"
	"testing"
)

func TestGenerateSpike(t *testing.T) {
	times := make([]float64, 101)
	for i := range times {
		times[i] = float64(i) / 100.0
	}

	y := GenerateSpike(times, 0.5)
	if len(y) != len(times) {
		t.Fatalf("expected %d samples, got %d", len(times), len(y))
	}

	// The sharp exponential term peaks exactly at the peak location;
	// the gaussian rebound there is exp(-4.5)/2.
	wantPeak := 1.0 - 0.5*math.Exp(-4.5)
	if !almostEqual(y[50], wantPeak) {
		t.Errorf("value at peak = %v, want %v", y[50], wantPeak)
	}

	// The peak sample dominates the rest of the trace.
	for i, v := range y {
		if i != 50 && v >= y[50] {
			t.Errorf("sample %d (%v) is not below the peak value %v", i, v, y[50])
		}
	}

	// The rebound dips below zero shortly after the peak.
	if y[52] >= 0 {
		t.Errorf("expected a negative rebound after the peak, got %v", y[52])
	}
}

func TestGenerateSpikeEmptyTimes(t *testing.T) {
	if y := GenerateSpike(nil, 0.5); len(y) != 0 {
		t.Errorf("expected no samples for no times, got %d", len(y))
	}
}
