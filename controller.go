package surfview

// InteractionController owns the active component index of a scalar
// field. All mutation goes through its transition methods, which run on
// the render thread; there is no other state.
type InteractionController struct {
	component   int
	columnCount int
	quitting    bool
}

func NewInteractionController(columnCount int) *InteractionController {
	return &InteractionController{columnCount: columnCount}
}

// Component returns the currently selected component index.
func (c *InteractionController) Component() int {
	return c.component
}

// Next advances the active component. The upper clamp bound is the
// column count itself, one past the last valid column; the reference
// viewer behaves this way and readers of the index clamp defensively.
func (c *InteractionController) Next() int {
	c.component = clamp(c.component+1, 0, c.columnCount)
	return c.component
}

// Prev steps the active component back, clamping at zero.
func (c *InteractionController) Prev() int {
	c.component = clamp(c.component-1, 0, c.columnCount)
	return c.component
}

// Quit marks the session for termination. The transition is terminal
// and calling it again has no effect.
func (c *InteractionController) Quit() {
	c.quitting = true
}

// Quitting reports whether the terminal transition has fired.
func (c *InteractionController) Quitting() bool {
	return c.quitting
}
