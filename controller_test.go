package surfview

import "testing"

func TestInteractionControllerCycling(t *testing.T) {
	testCases := []struct {
		name    string
		columns int
		start   int
		steps   []string
		want    int
	}{
		{"left at zero stays clamped", 3, 0, []string{"left"}, 0},
		{"right advances", 3, 0, []string{"right"}, 1},
		{"right from last column reaches the column count", 3, 2, []string{"right"}, 3},
		{"right saturates at the column count", 3, 2, []string{"right", "right", "right"}, 3},
		{"left steps back from the saturated index", 3, 3, []string{"left"}, 2},
		{"no columns pins the index at zero", 0, 0, []string{"right", "right"}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewInteractionController(tc.columns)
			c.component = tc.start
			for _, step := range tc.steps {
				switch step {
				case "left":
					c.Prev()
				case "right":
					c.Next()
				}
			}
			if got := c.Component(); got != tc.want {
				t.Errorf("component = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestInteractionControllerQuitIsTerminalAndIdempotent(t *testing.T) {
	c := NewInteractionController(2)

	c.Quit()
	if !c.Quitting() {
		t.Fatal("expected quitting state after Quit")
	}

	// A second quit must be a harmless no-op.
	c.Quit()
	if !c.Quitting() {
		t.Fatal("second Quit cleared the quitting state")
	}
}
