package presentation

// Rect is an axis-aligned box in screen pixels
type Rect struct {
	X, Y, W, H float64
}

// Indicator shows a copy of the winning symbol at a fixed anchor
type Indicator struct {
	Symbol  string
	Bounds  Rect
	Visible bool
}

// Show sets the symbol and makes the indicator visible
func (i *Indicator) Show(symbol string) {
	i.Symbol = symbol
	i.Visible = true
}

// Hide hides the indicator; the last symbol is kept for the next Show
func (i *Indicator) Hide() {
	i.Visible = false
}

// Message is the payout text; text and visibility are managed separately
type Message struct {
	Text    string
	X, Y    float64
	Visible bool
}

// Place positions the message to the right of bounds, gap px away, at height/baselineDiv
func (m *Message) Place(bounds Rect, gap, baselineDiv float64) {
	m.X = bounds.X + bounds.W + gap
	m.Y = bounds.Y + bounds.H/baselineDiv
}

// Clear empties and hides the message
func (m *Message) Clear() {
	m.Visible = false
	m.Text = ""
}
