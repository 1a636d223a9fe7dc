package input

// Source reports which buttons are held right now.
type Source interface {
	Buttons() Button
}

// Func adapts a plain function to a Source.
type Func func() Button

func (f Func) Buttons() Button {
	return f()
}

// ButtonController keeps the current and previous button state so callers
// can ask for edges as well as levels. Call Update once per frame.
type ButtonController struct {
	source   Source
	current  Button
	previous Button
}

// NewButtonController creates a controller reading from source. The state
// starts empty until the first Update.
func NewButtonController(source Source) *ButtonController {
	return &ButtonController{source: source}
}

// Update samples the source, moving the current state to previous.
func (c *ButtonController) Update() {
	c.previous = c.current
	if c.source != nil {
		c.current = c.source.Buttons() & All
	} else {
		c.current = None
	}
}

// State returns the buttons held as of the last Update.
func (c *ButtonController) State() Button {
	return c.current
}

func (c *ButtonController) IsPressed(b Button) bool {
	return c.current.Has(b)
}

func (c *ButtonController) IsReleased(b Button) bool {
	return c.current&b == 0
}

// IsJustPressed is true only on the frame b went down.
func (c *ButtonController) IsJustPressed(b Button) bool {
	return c.current.Has(b) && c.previous&b == 0
}

// IsJustReleased is true only on the frame b went up.
func (c *ButtonController) IsJustReleased(b Button) bool {
	return c.current&b == 0 && c.previous.Has(b)
}

// XTri is Negative for Left and Positive for Right.
func (c *ButtonController) XTri() Tri {
	return triFrom(c.current, Left, Right)
}

// YTri is Negative for Up and Positive for Down, matching screen space.
func (c *ButtonController) YTri() Tri {
	return triFrom(c.current, Up, Down)
}

// JustPressedXTri is like XTri but only counts buttons that went down this frame.
func (c *ButtonController) JustPressedXTri() Tri {
	return triFrom(c.current&^c.previous, Left, Right)
}

// JustPressedYTri is like YTri but only counts buttons that went down this frame.
func (c *ButtonController) JustPressedYTri() Tri {
	return triFrom(c.current&^c.previous, Up, Down)
}
